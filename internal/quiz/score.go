package quiz

import "github.com/vidhya/vidhya/internal/ratio"

// Unanswered marks a question without a selected option in a QuestionResult.
const Unanswered = -1

// QuestionResult is the outcome of one question.
type QuestionResult struct {
	Index    int
	Selected int // Unanswered if no option was chosen
	Correct  bool
}

// ScoreReport is the final result of a submitted session.
type ScoreReport struct {
	AttemptID        string
	TestID           string
	TestTitle        string
	CorrectCount     int
	Answered         int
	TotalQuestions   int
	Percentage       int
	PassingScore     int
	Passed           bool
	SubmittedBy      SubmitReason
	TimeTakenSeconds int
	Results          []QuestionResult
}

// IsPerfect reports whether every question was answered correctly.
func (r ScoreReport) IsPerfect() bool {
	return r.TotalQuestions > 0 && r.CorrectCount == r.TotalQuestions
}

// score grades answers against test. Unanswered questions count as
// incorrect and stay in the denominator.
func score(test Test, answers map[int]int) ScoreReport {
	r := ScoreReport{
		TestID:         test.ID,
		TestTitle:      test.Title,
		TotalQuestions: test.TotalQuestions(),
		PassingScore:   test.PassingScore,
		Results:        make([]QuestionResult, test.TotalQuestions()),
	}
	for i, q := range test.Questions {
		res := QuestionResult{Index: i, Selected: Unanswered}
		if opt, ok := answers[i]; ok {
			r.Answered++
			res.Selected = opt
			res.Correct = opt == q.CorrectOption
		}
		if res.Correct {
			r.CorrectCount++
		}
		r.Results[i] = res
	}
	r.Percentage = ratio.Percent(r.CorrectCount, r.TotalQuestions)
	r.Passed = r.Percentage >= test.PassingScore
	return r
}
