package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretScenario(t *testing.T) {
	got := Interpret([]string{"Warm", "Morning", "56", "Blue", "Creativity", "#0000FF"})
	require.Len(t, got, 6)

	assert.Equal(t, "You thrive in warm and sunny environments, suggesting you enjoy energy and vibrancy in your surroundings.", got[0])
	assert.Equal(t, "Your productivity peaks in the morning, indicating you're likely an early riser who enjoys starting the day fresh.", got[1])
	assert.Equal(t, "Your chosen number (56) reveals your intuitive nature and balanced decision-making style.", got[2])
	assert.Equal(t, "Blue reflects your calm, confident, and trustworthy personality.", got[3])
	assert.Equal(t, "Your inspiration from the image suggests Creativity.", got[4])
	assert.Equal(t, "The color you selected (#0000FF) suggests you are introspective and logical.", got[5])
}

func TestReading(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		answer string
		want   string
	}{
		{"cool climate", 0, "Cool", "You feel most comfortable in cool and calm environments, hinting at a preference for tranquility and balance."},
		{"unknown climate", 0, "Hot", FallbackReading},
		{"evening", 1, "Evening", "You perform best in the evening, showing you're energized when others wind down."},
		{"red", 3, "Red", "Red reveals your passionate, bold, and dynamic approach to life."},
		{"purple falls back", 3, "Purple", FallbackReading},
		{"green falls back", 3, "Green", FallbackReading},
		{"red hex", 5, "#FF0000", "The color you selected (#FF0000) suggests you are bold and action-oriented."},
		{"green hex", 5, "#00FF00", "The color you selected (#00FF00) suggests you are calm and deeply connected to nature."},
		{"yellow hex", 5, "#FFFF00", "The color you selected (#FFFF00) suggests you are energetic and optimistic."},
		{"lowercase hex", 5, "#0000ff", "The color you selected (#0000ff) suggests you are unique and creative in your choices."},
		{"beyond table", 6, "anything", FallbackReading},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reading(tt.index, tt.answer))
		})
	}
}
