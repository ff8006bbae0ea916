package render

import "image/color"

// Arcade 16-color palette indices. Index 0 is transparent in sprite images.
const (
	ColorTransparent = 0
	ColorWhite       = 1
	ColorRed         = 2
	ColorPink        = 3
	ColorOrange      = 4
	ColorYellow      = 5
	ColorTeal        = 6
	ColorGreen       = 7
	ColorBlue        = 8
	ColorLightBlue   = 9
	ColorPurple      = 10
	ColorLightPurple = 11
	ColorDarkPurple  = 12
	ColorTan         = 13
	ColorBrown       = 14
	ColorBlack       = 15
)

// Palette contains the arcade 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 0},         // 0: Transparent
	{255, 255, 255, 255}, // 1: White
	{255, 33, 33, 255},   // 2: Red
	{255, 147, 196, 255}, // 3: Pink
	{255, 129, 53, 255},  // 4: Orange
	{255, 246, 9, 255},   // 5: Yellow
	{36, 156, 163, 255},  // 6: Teal
	{120, 220, 82, 255},  // 7: Green
	{0, 63, 173, 255},    // 8: Blue
	{135, 242, 255, 255}, // 9: Light Blue
	{142, 46, 196, 255},  // 10: Purple
	{164, 131, 159, 255}, // 11: Light Purple
	{92, 64, 108, 255},   // 12: Dark Purple
	{229, 205, 196, 255}, // 13: Tan
	{145, 70, 61, 255},   // 14: Brown
	{0, 0, 0, 255},       // 15: Black
}

// RGBA returns the palette entry for c, or opaque black for out-of-range indices.
func RGBA(c uint8) color.RGBA {
	if int(c) < len(Palette) {
		return Palette[c]
	}
	return Palette[ColorBlack]
}
