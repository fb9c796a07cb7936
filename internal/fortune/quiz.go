package fortune

import (
	"fmt"
	"slices"
)

// State is one attempt's progress through a catalog. Values are treated as
// immutable: every transition returns a new State.
type State struct {
	Step     int      `json:"step"`
	Pending  string   `json:"pending,omitempty"`
	Answers  []string `json:"answers"`
	Complete bool     `json:"complete"`
}

// Progress is the position indicator shown under each question.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Percent returns Current/Total as a percentage.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}

func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Current, p.Total)
}

// Quiz drives States over a fixed catalog.
type Quiz struct {
	catalog Catalog
}

func NewQuiz(catalog Catalog) *Quiz {
	return &Quiz{catalog: catalog}
}

func (q *Quiz) Catalog() Catalog { return q.catalog }

// Start returns the initial state: first question, nothing answered.
func (q *Quiz) Start() State {
	return State{Answers: []string{}}
}

// Fits reports whether s can be driven by this quiz's catalog. A state
// saved under a different catalog may point past its last question.
func (q *Quiz) Fits(s State) bool {
	return s.Step >= 0 && s.Step < len(q.catalog) && len(s.Answers) <= len(q.catalog)
}

// Current returns the question shown at s.Step. s must fit the catalog.
func (q *Quiz) Current(s State) Question {
	return q.catalog[s.Step]
}

// Choose records value as the pending answer. It may be called repeatedly
// before Continue; it has no effect once the quiz is complete.
func (q *Quiz) Choose(s State, value string) State {
	if s.Complete {
		return s
	}
	s.Pending = value
	return s
}

// Continue commits the pending answer and advances. With no pending answer
// the state is returned unchanged.
func (q *Quiz) Continue(s State) State {
	if s.Complete || s.Pending == "" {
		return s
	}
	s.Answers = append(slices.Clip(s.Answers), s.Pending)
	s.Pending = ""
	if s.Step == len(q.catalog)-1 {
		s.Complete = true
		return s
	}
	s.Step++
	return s
}

// Restart discards all answers and returns to the first question.
func (q *Quiz) Restart() State {
	return q.Start()
}

// CanContinue reports whether the continue control is enabled. It is
// disabled only on a choice question with nothing chosen.
func (q *Quiz) CanContinue(s State) bool {
	if s.Complete {
		return false
	}
	return s.Pending != "" || q.Current(s).IsColor()
}

func (q *Quiz) Progress(s State) Progress {
	return Progress{Current: s.Step + 1, Total: len(q.catalog)}
}

// Results interprets every confirmed answer in order.
func (q *Quiz) Results(s State) []string {
	return Interpret(s.Answers)
}
