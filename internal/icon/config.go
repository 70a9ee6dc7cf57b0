package icon

import "image/color"

// Launcher icon palette.
var (
	// Field is the pink background, also used for the checkmark.
	Field = color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF} // #ff69b4

	// Badge fills the rounded square behind the checkmark.
	Badge = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff

	Glyph = Field
)
