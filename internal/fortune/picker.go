package fortune

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the picker's color when it mounts.
const DefaultColor = "#561ecb"

// Palette lists the preset swatches in display order.
var Palette = []string{
	"#FF0000",
	"#FF7F00",
	"#FFFF00",
	"#00FF00",
	"#0000FF",
	"#4B0082",
	"#8B00FF",
	"#FF1493",
	"#00FFFF",
	"#FF69B4",
	"#32CD32",
	"#FFD700",
	"#8A2BE2",
	"#FF4500",
	"#00CED1",
	"#9400D3",
}

// Picker is the color selector's local state. A fresh Picker is mounted
// every time the quiz lands on a color question.
type Picker struct {
	Color          string `json:"color"`
	PaletteVisible bool   `json:"paletteVisible"`
}

func NewPicker() Picker {
	return Picker{Color: DefaultColor}
}

// SelectPaletteColor previews color and keeps the palette open.
func (p Picker) SelectPaletteColor(color string) Picker {
	p.Color = color
	return p
}

func (p Picker) TogglePalette() Picker {
	p.PaletteVisible = !p.PaletteVisible
	return p
}

// SetCustomColor accepts whatever the native color input produced.
func (p Picker) SetCustomColor(hex string) Picker {
	p.Color = hex
	return p
}

// Confirm hands the current color to onSelect. It is the only way a color
// leaves the picker.
func (p Picker) Confirm(onSelect func(color string)) {
	onSelect(p.Color)
}

// PreviewInk returns the label color that stays legible on top of hex.
// Values go-colorful cannot parse get black ink.
func PreviewInk(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
