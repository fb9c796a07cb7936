package server

import (
	"github.com/watchingglass/fortune/internal/fortune"
)

// AttemptView is what both the HTML pages and the JSON API render.
type AttemptView struct {
	ID          string            `json:"id"`
	Step        int               `json:"step"`
	Total       int               `json:"total"`
	Progress    string            `json:"progress"`
	Percent     float64           `json:"percent"`
	Question    *fortune.Question `json:"question,omitempty"`
	Pending     string            `json:"pending,omitempty"`
	Answers     []string          `json:"answers"`
	Complete    bool              `json:"complete"`
	CanContinue bool              `json:"canContinue"`
	Color       *ColorView        `json:"color,omitempty"`
	Results     []string          `json:"results,omitempty"`
}

type ColorView struct {
	Color          string   `json:"color"`
	Ink            string   `json:"ink"`
	PaletteVisible bool     `json:"paletteVisible"`
	Palette        []string `json:"palette"`
}

func newAttemptView(quiz *fortune.Quiz, a Attempt) AttemptView {
	st := a.Session.State
	progress := quiz.Progress(st)

	v := AttemptView{
		ID:          a.ID,
		Step:        st.Step,
		Total:       progress.Total,
		Progress:    progress.String(),
		Percent:     progress.Percent(),
		Pending:     st.Pending,
		Answers:     st.Answers,
		Complete:    st.Complete,
		CanContinue: quiz.CanContinue(st),
	}
	if v.Answers == nil {
		v.Answers = []string{}
	}

	if st.Complete {
		v.Results = quiz.Results(st)
		return v
	}

	q := quiz.Current(st)
	if q.Options == nil {
		q.Options = []string{}
	}
	v.Question = &q

	if p := a.Session.Picker; p != nil {
		v.Color = &ColorView{
			Color:          p.Color,
			Ink:            fortune.PreviewInk(p.Color),
			PaletteVisible: p.PaletteVisible,
			Palette:        fortune.Palette,
		}
	}
	return v
}
