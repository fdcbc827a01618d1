package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Clear   key.Binding
	Submit  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "choose"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "keep going"),
		),
	}
}

// optionIndex maps the option hotkeys 1-9, and their letter aliases a-i,
// to an option index. Navigation bindings take precedence over letters.
func optionIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	c := k[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}
