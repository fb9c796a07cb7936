package fortune

import "fmt"

// FallbackReading is used for any answer the table has no rule for.
const FallbackReading = "An interesting choice! Let's explore what it means further."

type rule struct {
	match func(answer string) bool
	text  func(answer string) string
}

func is(value string) func(string) bool {
	return func(answer string) bool { return answer == value }
}

func anything(string) bool { return true }

func fixed(text string) func(string) string {
	return func(string) string { return text }
}

// colorTraits maps the recognised hex values of the color question to a trait.
var colorTraits = map[string]string{
	"#FF0000": "bold and action-oriented.",
	"#00FF00": "calm and deeply connected to nature.",
	"#0000FF": "introspective and logical.",
	"#FFFF00": "energetic and optimistic.",
}

const defaultColorTrait = "unique and creative in your choices."

// readings holds the rules for each answer position, tried in order.
var readings = map[int][]rule{
	0: {
		{is("Warm"), fixed("You thrive in warm and sunny environments, suggesting you enjoy energy and vibrancy in your surroundings.")},
		{is("Cool"), fixed("You feel most comfortable in cool and calm environments, hinting at a preference for tranquility and balance.")},
	},
	1: {
		{is("Morning"), fixed("Your productivity peaks in the morning, indicating you're likely an early riser who enjoys starting the day fresh.")},
		{is("Evening"), fixed("You perform best in the evening, showing you're energized when others wind down.")},
	},
	2: {
		{anything, func(a string) string {
			return fmt.Sprintf("Your chosen number (%s) reveals your intuitive nature and balanced decision-making style.", a)
		}},
	},
	3: {
		{is("Blue"), fixed("Blue reflects your calm, confident, and trustworthy personality.")},
		{is("Red"), fixed("Red reveals your passionate, bold, and dynamic approach to life.")},
	},
	4: {
		{anything, func(a string) string {
			return fmt.Sprintf("Your inspiration from the image suggests %s.", a)
		}},
	},
	5: {
		{anything, func(a string) string {
			return fmt.Sprintf("The color you selected (%s) suggests you are %s", a, ColorTrait(a))
		}},
	},
}

// ColorTrait returns the personality trait for a selected color. Matching
// is exact, so "#0000ff" is not "#0000FF".
func ColorTrait(hex string) string {
	if trait, ok := colorTraits[hex]; ok {
		return trait
	}
	return defaultColorTrait
}

// Reading returns the interpretive sentence for answer at position index.
func Reading(index int, answer string) string {
	for _, r := range readings[index] {
		if r.match(answer) {
			return r.text(answer)
		}
	}
	return FallbackReading
}

// Interpret returns one reading per answer, in order.
func Interpret(answers []string) []string {
	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = Reading(i, a)
	}
	return out
}
