package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionTest() Test {
	return Test{
		ID:              "t1",
		Title:           "Two Questions",
		DurationMinutes: 1,
		PassingScore:    50,
		Questions: []Question{
			{Prompt: "q0", Options: []string{"a", "b", "c"}, CorrectOption: 2},
			{Prompt: "q1", Options: []string{"a", "b"}, CorrectOption: 0},
		},
	}
}

func startSession(t *testing.T, test Test) *Session {
	t.Helper()
	s, err := Start(test)
	require.NoError(t, err)
	return s
}

func TestNew_IsNotStarted(t *testing.T) {
	s, err := New(twoQuestionTest())
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, s.Status())
	assert.NotEmpty(t, s.AttemptID())
}

func TestStart(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	assert.Equal(t, StatusActive, s.Status())
	assert.Equal(t, 0, s.QuestionIndex())
	assert.Empty(t, s.Answers())
	assert.Equal(t, 60, s.RemainingSeconds())

	err := s.Start()
	assert.True(t, errors.Is(err, ErrInvalidTransition), "second Start should be rejected, got %v", err)
}

func TestStart_InvalidTest(t *testing.T) {
	tests := []struct {
		name string
		test Test
	}{
		{"no questions", Test{ID: "x", DurationMinutes: 1, PassingScore: 50}},
		{"zero duration", Test{ID: "x", DurationMinutes: 0, PassingScore: 50, Questions: twoQuestionTest().Questions}},
		{"passing score above 100", Test{ID: "x", DurationMinutes: 1, PassingScore: 101, Questions: twoQuestionTest().Questions}},
		{"single option", Test{ID: "x", DurationMinutes: 1, Questions: []Question{{Options: []string{"only"}}}}},
		{"correct option out of range", Test{ID: "x", DurationMinutes: 1, Questions: []Question{{Options: []string{"a", "b"}, CorrectOption: 2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Start(tt.test)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "want ErrInvalidInput, got %v", err)
		})
	}
}

func TestSelectAnswer_OverwritesWithoutAdvancing(t *testing.T) {
	s := startSession(t, twoQuestionTest())

	require.NoError(t, s.SelectAnswer(1))
	require.NoError(t, s.SelectAnswer(2))

	opt, ok := s.Answer(0)
	assert.True(t, ok)
	assert.Equal(t, 2, opt)
	assert.Equal(t, 0, s.QuestionIndex())
	assert.Equal(t, 1, s.AnsweredCount())
}

func TestSelectAnswer_OutOfRange(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	for _, opt := range []int{-1, 3} {
		err := s.SelectAnswer(opt)
		assert.True(t, errors.Is(err, ErrInvalidInput), "SelectAnswer(%d) = %v", opt, err)
	}
	assert.Zero(t, s.AnsweredCount())
}

func TestClearAnswer(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	require.NoError(t, s.SelectAnswer(1))
	require.NoError(t, s.ClearAnswer())
	_, ok := s.Answer(0)
	assert.False(t, ok)
}

func TestAdvance_ClampsAtBoundaries(t *testing.T) {
	s := startSession(t, twoQuestionTest())

	require.NoError(t, s.Advance(Prev))
	assert.Equal(t, 0, s.QuestionIndex())

	require.NoError(t, s.Advance(Next))
	assert.Equal(t, 1, s.QuestionIndex())

	require.NoError(t, s.Advance(Next))
	assert.Equal(t, 1, s.QuestionIndex())

	require.NoError(t, s.Advance(Prev))
	assert.Equal(t, 0, s.QuestionIndex())

	assert.True(t, errors.Is(s.Advance(Direction(7)), ErrInvalidInput))
}

func TestGoTo(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	require.NoError(t, s.GoTo(1))
	assert.Equal(t, 1, s.QuestionIndex())
	assert.Equal(t, "q1", s.CurrentQuestion().Prompt)

	assert.True(t, errors.Is(s.GoTo(2), ErrInvalidInput))
	assert.True(t, errors.Is(s.GoTo(-1), ErrInvalidInput))
	assert.Equal(t, 1, s.QuestionIndex())
}

func TestSubmit_ScoresAnswers(t *testing.T) {
	s := startSession(t, twoQuestionTest())

	require.NoError(t, s.SelectAnswer(2)) // correct
	require.NoError(t, s.Advance(Next))
	require.NoError(t, s.SelectAnswer(1)) // wrong

	report, err := s.Submit()
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, s.Status())
	assert.Equal(t, 1, report.CorrectCount)
	assert.Equal(t, 50, report.Percentage)
	assert.True(t, report.Passed)
	assert.Equal(t, 2, report.Answered)
	assert.Equal(t, SubmittedManually, report.SubmittedBy)
	assert.Equal(t, s.AttemptID(), report.AttemptID)
	assert.Equal(t, "t1", report.TestID)
	assert.False(t, report.IsPerfect())
	assert.Equal(t, []QuestionResult{
		{Index: 0, Selected: 2, Correct: true},
		{Index: 1, Selected: 1, Correct: false},
	}, report.Results)
}

func TestSubmit_UnansweredCountsIncorrect(t *testing.T) {
	test := twoQuestionTest()
	test.PassingScore = 51
	s := startSession(t, test)
	require.NoError(t, s.SelectAnswer(2))

	report, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, report.CorrectCount)
	assert.Equal(t, 2, report.TotalQuestions)
	assert.Equal(t, 50, report.Percentage)
	assert.False(t, report.Passed)
	assert.Equal(t, Unanswered, report.Results[1].Selected)
}

func TestSubmit_Perfect(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	require.NoError(t, s.SelectAnswer(2))
	require.NoError(t, s.GoTo(1))
	require.NoError(t, s.SelectAnswer(0))

	report, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 100, report.Percentage)
	assert.True(t, report.IsPerfect())
}

func TestSubmit_RoundsPercentage(t *testing.T) {
	test := Test{
		ID:              "thirds",
		DurationMinutes: 1,
		PassingScore:    67,
		Questions: []Question{
			{Options: []string{"a", "b"}, CorrectOption: 0},
			{Options: []string{"a", "b"}, CorrectOption: 0},
			{Options: []string{"a", "b"}, CorrectOption: 0},
		},
	}
	s := startSession(t, test)
	require.NoError(t, s.SelectAnswer(0))
	require.NoError(t, s.Advance(Next))
	require.NoError(t, s.SelectAnswer(0))

	report, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 67, report.Percentage)
	assert.True(t, report.Passed)
}

func TestTick_AutoSubmitsOnTimeout(t *testing.T) {
	test := twoQuestionTest()
	s := startSession(t, test)
	require.NoError(t, s.SelectAnswer(2))

	for i := 0; i < test.DurationMinutes*60; i++ {
		require.Equal(t, StatusActive, s.Status(), "submitted early at tick %d", i)
		require.NoError(t, s.Tick())
	}

	assert.Equal(t, StatusSubmitted, s.Status())
	assert.Equal(t, 0, s.RemainingSeconds())

	report, err := s.Report()
	require.NoError(t, err)
	assert.Equal(t, SubmittedTimeout, report.SubmittedBy)
	assert.Equal(t, 1, report.CorrectCount)
	assert.Equal(t, 50, report.Percentage)
	assert.Equal(t, 60, report.TimeTakenSeconds)

	// Extra ticks after the clock ran out are ignored.
	require.NoError(t, s.Tick())
	assert.Equal(t, 0, s.RemainingSeconds())
}

func TestTick_Decrements(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	require.NoError(t, s.Tick())
	require.NoError(t, s.Tick())
	assert.Equal(t, 58, s.RemainingSeconds())

	report, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, report.TimeTakenSeconds)
}

func TestOperationsRejectedWhenNotActive(t *testing.T) {
	notStarted, err := New(twoQuestionTest())
	require.NoError(t, err)

	submitted := startSession(t, twoQuestionTest())
	_, err = submitted.Submit()
	require.NoError(t, err)

	for name, s := range map[string]*Session{"not started": notStarted, "submitted": submitted} {
		t.Run(name, func(t *testing.T) {
			ops := map[string]error{
				"select":  s.SelectAnswer(0),
				"clear":   s.ClearAnswer(),
				"advance": s.Advance(Next),
				"goto":    s.GoTo(0),
				"tick":    s.Tick(),
			}
			_, ops["submit"] = s.Submit()
			for op, err := range ops {
				assert.True(t, errors.Is(err, ErrInvalidTransition), "%s: got %v", op, err)
				var terr *TransitionError
				if assert.True(t, errors.As(err, &terr), "%s: want *TransitionError", op) {
					assert.Equal(t, s.Status(), terr.Status)
				}
			}
		})
	}

	_, err = notStarted.Report()
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := startSession(t, twoQuestionTest())
	require.NoError(t, s.SelectAnswer(1))

	answers := s.Answers()
	answers[0] = 0
	opt, _ := s.Answer(0)
	assert.Equal(t, 1, opt)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "not-started", StatusNotStarted.String())
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "submitted", StatusSubmitted.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
