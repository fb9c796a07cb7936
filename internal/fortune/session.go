package fortune

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ActionType names a user input that changes a Session.
type ActionType string

const (
	ActionChoose      ActionType = "choose"
	ActionContinue    ActionType = "continue"
	ActionRestart     ActionType = "restart"
	ActionPalette     ActionType = "palette"
	ActionSelectColor ActionType = "select_color"
	ActionCustomColor ActionType = "custom_color"
	ActionSubmitColor ActionType = "submit_color"
)

type Action struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value,omitempty"`
}

var (
	// ErrNoPicker is returned for color actions on a step without a picker.
	ErrNoPicker = errors.New("no color picker on this step")

	// ErrNoOptions is returned for choose on a color step. Its answer comes
	// only from the picker.
	ErrNoOptions = errors.New("this step is answered with the color picker")

	// ErrNotAnOption is returned when a chosen value is none of the
	// current question's options.
	ErrNotAnOption = errors.New("value is not an option of this question")

	ErrUnknownAction = errors.New("unknown action")
)

// Session pairs the quiz state with the picker mounted for the current step,
// if any.
type Session struct {
	State  State   `json:"state"`
	Picker *Picker `json:"picker,omitempty"`
}

// Begin returns a fresh session at the first question.
func (q *Quiz) Begin() Session {
	return q.mount(Session{State: q.Start()}, true)
}

// Apply returns sess with a applied.
// The picker is remounted whenever the quiz arrives on a color step and
// dropped when it leaves one.
func (q *Quiz) Apply(sess Session, a Action) (Session, error) {
	before := sess.State
	a.Value = strings.TrimSpace(a.Value)
	switch a.Type {
	case ActionChoose:
		if err := q.checkChoice(sess.State, a.Value); err != nil {
			return sess, err
		}
		sess.State = q.Choose(sess.State, a.Value)
	case ActionContinue:
		sess.State = q.Continue(sess.State)
	case ActionRestart:
		sess.State = q.Restart()
		return q.mount(sess, true), nil
	case ActionPalette, ActionSelectColor, ActionCustomColor, ActionSubmitColor:
		if sess.Picker == nil {
			return sess, ErrNoPicker
		}
		sess = q.applyPicker(sess, a)
	default:
		return sess, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	moved := before.Step != sess.State.Step || before.Complete != sess.State.Complete
	return q.mount(sess, moved), nil
}

// checkChoice accepts only the option texts of the current choice question.
// A complete quiz ignores choose, so anything passes there.
func (q *Quiz) checkChoice(s State, value string) error {
	if s.Complete {
		return nil
	}
	cur := q.Current(s)
	if cur.IsColor() {
		return ErrNoOptions
	}
	if !slices.Contains(cur.Options, value) {
		return fmt.Errorf("%w: %q", ErrNotAnOption, value)
	}
	return nil
}

func (q *Quiz) applyPicker(sess Session, a Action) Session {
	p := *sess.Picker
	switch a.Type {
	case ActionPalette:
		p = p.TogglePalette()
	case ActionSelectColor:
		p = p.SelectPaletteColor(a.Value)
	case ActionCustomColor:
		p = p.SetCustomColor(a.Value)
	case ActionSubmitColor:
		p.Confirm(func(color string) {
			sess.State = q.Choose(sess.State, color)
		})
	}
	sess.Picker = &p
	return sess
}

func (q *Quiz) mount(sess Session, fresh bool) Session {
	if sess.State.Complete || !q.Current(sess.State).IsColor() {
		sess.Picker = nil
		return sess
	}
	if fresh || sess.Picker == nil {
		p := NewPicker()
		sess.Picker = &p
	}
	return sess
}
