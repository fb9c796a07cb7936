package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerConfirmFiresOnce(t *testing.T) {
	p := NewPicker().TogglePalette().SelectPaletteColor("#FFD700")

	var got []string
	p.Confirm(func(c string) { got = append(got, c) })

	assert.Equal(t, []string{"#FFD700"}, got)
	assert.True(t, p.PaletteVisible)
}

func TestCustomColorAcceptedAsIs(t *testing.T) {
	p := NewPicker().SelectPaletteColor("#FF0000").SetCustomColor("not-a-color")

	assert.Equal(t, "not-a-color", p.Color)
	assert.False(t, p.PaletteVisible)
}

func TestTogglePalette(t *testing.T) {
	p := NewPicker()
	assert.False(t, p.PaletteVisible)
	assert.True(t, p.TogglePalette().PaletteVisible)
	assert.False(t, p.TogglePalette().TogglePalette().PaletteVisible)
}

func TestPreviewInk(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFF00", "#000000"},
		{"#FFFFFF", "#000000"},
		{"#0000FF", "#FFFFFF"},
		{DefaultColor, "#FFFFFF"},
		{"garbage", "#000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreviewInk(tt.hex), tt.hex)
	}
}
