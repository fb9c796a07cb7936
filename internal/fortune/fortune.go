// Package fortune defines the quiz domain: the question catalog, the quiz
// state machine, the color picker and the interpretation table.
// It performs no I/O beyond parsing catalog bytes.
package fortune

// Kind distinguishes how a question is answered.
type Kind string

const (
	KindChoice Kind = "choice"
	KindColor  Kind = "color"
)

type Question struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []string `yaml:"options" json:"options"`
	Kind    Kind     `yaml:"kind" json:"kind"`
	Image   string   `yaml:"image" json:"image,omitempty"`
}

// IsColor reports whether the question is answered through the color picker.
func (q Question) IsColor() bool {
	return q.Kind == KindColor
}

// Catalog is the ordered, read-only list of questions for a quiz.
type Catalog []Question

func (c Catalog) Len() int { return len(c) }
