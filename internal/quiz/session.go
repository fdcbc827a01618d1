package quiz

import (
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusSubmitted // terminal
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusActive:
		return "active"
	case StatusSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Direction moves the current question index.
type Direction int

const (
	Next Direction = iota
	Prev
)

// SubmitReason records how a session reached StatusSubmitted.
type SubmitReason string

const (
	SubmittedManually SubmitReason = "manual"
	SubmittedTimeout  SubmitReason = "timeout"
)

// Session is one learner's attempt at a test. It is owned by a single
// caller and is not safe for concurrent use. Starting a new attempt means
// creating a new Session.
type Session struct {
	test             Test
	attemptID        string
	status           Status
	questionIndex    int
	answers          map[int]int
	remainingSeconds int
	report           *ScoreReport
}

// New returns a NotStarted session for test.
func New(test Test) (*Session, error) {
	if err := test.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		test:      test,
		attemptID: uuid.New().String(),
		answers:   make(map[int]int),
	}, nil
}

// Start creates a session for test and starts it.
func Start(test Test) (*Session, error) {
	s, err := New(test)
	if err != nil {
		return nil, err
	}
	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start moves a NotStarted session to Active with the first question
// selected, no answers and the full duration on the clock.
func (s *Session) Start() error {
	if s.status != StatusNotStarted {
		return &TransitionError{Op: "start", Status: s.status}
	}
	s.status = StatusActive
	s.questionIndex = 0
	s.answers = make(map[int]int)
	s.remainingSeconds = s.test.DurationSeconds()
	return nil
}

// SelectAnswer records option as the answer to the current question,
// replacing any earlier choice. It does not move to the next question.
func (s *Session) SelectAnswer(option int) error {
	if s.status != StatusActive {
		return &TransitionError{Op: "select answer", Status: s.status}
	}
	q := s.test.Questions[s.questionIndex]
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: option %d out of range for question %d", ErrInvalidInput, option, s.questionIndex)
	}
	s.answers[s.questionIndex] = option
	return nil
}

// ClearAnswer removes the answer to the current question.
func (s *Session) ClearAnswer() error {
	if s.status != StatusActive {
		return &TransitionError{Op: "clear answer", Status: s.status}
	}
	delete(s.answers, s.questionIndex)
	return nil
}

// Advance moves to the next or previous question. Moving past either end
// is a no-op.
func (s *Session) Advance(dir Direction) error {
	if s.status != StatusActive {
		return &TransitionError{Op: "advance", Status: s.status}
	}
	switch dir {
	case Next:
		if s.questionIndex < s.test.TotalQuestions()-1 {
			s.questionIndex++
		}
	case Prev:
		if s.questionIndex > 0 {
			s.questionIndex--
		}
	default:
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidInput, dir)
	}
	return nil
}

// GoTo jumps directly to the question at index.
func (s *Session) GoTo(index int) error {
	if s.status != StatusActive {
		return &TransitionError{Op: "go to", Status: s.status}
	}
	if index < 0 || index >= s.test.TotalQuestions() {
		return fmt.Errorf("%w: question %d out of range", ErrInvalidInput, index)
	}
	s.questionIndex = index
	return nil
}

// Tick consumes one second of the countdown. When the clock reaches zero
// the session is submitted automatically. A tick after the clock has run
// out is ignored.
func (s *Session) Tick() error {
	if s.remainingSeconds == 0 && s.status != StatusNotStarted {
		return nil
	}
	if s.status != StatusActive {
		return &TransitionError{Op: "tick", Status: s.status}
	}
	s.remainingSeconds--
	if s.remainingSeconds == 0 {
		s.finish(SubmittedTimeout)
	}
	return nil
}

// Submit ends the attempt and scores it.
func (s *Session) Submit() (ScoreReport, error) {
	if s.status != StatusActive {
		return ScoreReport{}, &TransitionError{Op: "submit", Status: s.status}
	}
	s.finish(SubmittedManually)
	return *s.report, nil
}

// Report returns the score of a submitted session.
func (s *Session) Report() (ScoreReport, error) {
	if s.status != StatusSubmitted {
		return ScoreReport{}, &TransitionError{Op: "report", Status: s.status}
	}
	return *s.report, nil
}

func (s *Session) finish(reason SubmitReason) {
	s.status = StatusSubmitted
	r := score(s.test, s.answers)
	r.AttemptID = s.attemptID
	r.SubmittedBy = reason
	r.TimeTakenSeconds = s.test.DurationSeconds() - s.remainingSeconds
	s.report = &r
}

// Test returns the test definition.
func (s *Session) Test() Test { return s.test }

// AttemptID returns the unique ID of this attempt.
func (s *Session) AttemptID() string { return s.attemptID }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// QuestionIndex returns the index of the current question.
func (s *Session) QuestionIndex() int { return s.questionIndex }

// CurrentQuestion returns the question at QuestionIndex.
func (s *Session) CurrentQuestion() Question { return s.test.Questions[s.questionIndex] }

// RemainingSeconds returns the seconds left on the clock.
func (s *Session) RemainingSeconds() int { return s.remainingSeconds }

// Answer returns the option selected for question i.
func (s *Session) Answer(i int) (int, bool) {
	opt, ok := s.answers[i]
	return opt, ok
}

// Answers returns a copy of the recorded answers keyed by question index.
func (s *Session) Answers() map[int]int { return maps.Clone(s.answers) }

// AnsweredCount returns the number of questions with a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }
