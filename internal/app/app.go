package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vidhya/vidhya/internal/router"
	"github.com/vidhya/vidhya/internal/screen"
	"github.com/vidhya/vidhya/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	// Stats are shown in the header.
	Stats layout.HeaderStats
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// NewAppModel creates an AppModel showing initial.
func NewAppModel(initial screen.Screen, opts Options) AppModel {
	return AppModel{
		router: router.New(initial),
		stats:  opts.Stats,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program with initial as the first screen.
func Run(initial screen.Screen, opts Options) error {
	p := tea.NewProgram(NewAppModel(initial, opts))
	_, err := p.Run()
	return err
}
