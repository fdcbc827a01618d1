package quiz

import (
	"time"

	"github.com/vidhya/vidhya/internal/progress"
	qz "github.com/vidhya/vidhya/internal/quiz"
)

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// attemptSavedMsg is sent when the submitted attempt has been handed to
// the submit callback.
type attemptSavedMsg struct {
	Report  qz.ScoreReport
	Outcome *progress.AttemptOutcome
	Err     error
}
