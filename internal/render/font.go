package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text metrics for the built-in 7x13 face.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	glyphAscent = 11
)

var textFace font.Face = basicfont.Face7x13

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(textFace, s).Ceil()
}

// Print renders s with its top-left corner at (x, y) in color c.
// The face is a bitmap font, so any covered pixel is painted solid.
func (img *Image) Print(s string, x, y int, c uint8) {
	if s == "" {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, TextWidth(s), GlyphHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Opaque),
		Face: textFace,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(s)

	b := mask.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if mask.AlphaAt(px, py).A > 0 {
				img.SetPixel(x+px, y+py, c)
			}
		}
	}
	img.rev++
}
