package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pigroll/pose"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Default text
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Help line, inactive player
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbActive     = tcell.NewRGBColor(255, 165, 0)   // Orange turn marker
	RgbRing       = tcell.NewRGBColor(101, 67, 33)   // Dark brown ring top
	RgbRingEdge   = tcell.NewRGBColor(180, 180, 180) // Ring posts
	RgbPig        = tcell.NewRGBColor(255, 182, 193) // Pink
	RgbPigResting = tcell.NewRGBColor(255, 120, 160) // Darker pink once settled
	RgbScore      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPigOut     = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbWinner     = tcell.NewRGBColor(255, 255, 0)   // Gold
)

// categoryColors tint the settled category label
var categoryColors = map[pose.Category]tcell.Color{
	pose.Trotter:       tcell.NewRGBColor(0, 200, 0),
	pose.Razorback:     tcell.NewRGBColor(100, 150, 255),
	pose.Snouter:       tcell.NewRGBColor(255, 165, 0),
	pose.LeaningJowler: tcell.NewRGBColor(255, 255, 0),
}

// CategoryColor returns the label color for a category
func CategoryColor(c pose.Category) tcell.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return RgbText
}
