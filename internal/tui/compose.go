package tui

import (
	"math"
	"strings"

	"github.com/gookit/color"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

// Screen layout. The 160x120 world maps onto 80x30 cells, 2x4 pixels each.
const (
	Cols      = 80
	WorldRows = 30
	pxPerCol  = 2
	pxPerRow  = 4

	hudRow     = WorldRows
	commsRow   = hudRow + 1
	commsMax   = 4
	footerRow  = commsRow + commsMax
	Rows       = footerRow + 1
	panelRow   = 6 // station panel text, just below the panel's top edge
	panelInset = 2
)

const blockGlyph = '█'

// Frame is the text drawn around and over the sprite world.
type Frame struct {
	HUD    string
	Panel  []string
	Comms  []game.Message
	Footer string
}

// Compose rasterizes w into the top of buf and lays out the text rows
// below it. buf must be at least Cols x Rows.
func Compose(buf *render.CellBuffer, w *engine.World, f Frame) {
	buf.Clear()
	rasterize(buf, w)

	for i, line := range f.Panel {
		buf.WriteString(panelInset, panelRow+i, line, render.ColorWhite, render.ColorBlue)
	}
	buf.WriteString(1, hudRow, f.HUD, render.ColorWhite, render.ColorBlack)
	for i, msg := range f.Comms {
		if i >= commsMax {
			break
		}
		buf.WriteString(1, commsRow+i, msg.Text, msgColor(msg.Priority), render.ColorBlack)
	}
	if f.Footer != "" {
		buf.WriteString(1, footerRow, f.Footer, render.ColorYellow, render.ColorBlack)
	}
}

// rasterize paints the world background and every opaque sprite pixel,
// back to front. A cell takes the color of the last pixel drawn into it.
func rasterize(buf *render.CellBuffer, w *engine.World) {
	bg := w.Background()
	for y := range WorldRows {
		for x := range Cols {
			buf.Set(x, y, ' ', render.ColorWhite, bg)
		}
	}
	w.Draw(func(s *engine.Sprite, p engine.Position) {
		img := s.Image
		left := int(math.Floor(p.X - float64(img.W)/2))
		top := int(math.Floor(p.Y - float64(img.H)/2))
		for iy := range img.H {
			py := top + iy
			if py < 0 || py >= WorldRows*pxPerRow {
				continue
			}
			for ix := range img.W {
				c := img.Pixel(ix, iy)
				px := left + ix
				if c == render.ColorTransparent || px < 0 || px >= Cols*pxPerCol {
					continue
				}
				buf.Set(px/pxPerCol, py/pxPerRow, blockGlyph, c, bg)
			}
		}
	})
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorRed
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgReward:
		return render.ColorGreen
	default:
		return render.ColorLightBlue
	}
}

// encoder turns a cell buffer into ANSI output, one style per run of
// same-colored cells.
type encoder struct {
	styles map[[2]uint8]*color.RGBStyle
	sb     strings.Builder
}

func newEncoder() *encoder {
	return &encoder{styles: make(map[[2]uint8]*color.RGBStyle)}
}

func (e *encoder) style(fg, bg uint8) *color.RGBStyle {
	k := [2]uint8{fg, bg}
	if st, ok := e.styles[k]; ok {
		return st
	}
	st := color.NewRGBStyle(rgb(fg), rgb(bg))
	e.styles[k] = st
	return st
}

// Encode returns the full frame, starting with a cursor-home sequence.
// Raw mode does not translate newlines, so rows end in CR LF.
func (e *encoder) Encode(buf *render.CellBuffer) string {
	e.sb.Reset()
	e.sb.WriteString("\x1b[H")
	var run strings.Builder
	for y := range buf.Rows {
		for x := 0; x < buf.Cols; {
			c := buf.Get(x, y)
			run.Reset()
			for ; x < buf.Cols; x++ {
				n := buf.Get(x, y)
				if n.FG != c.FG || n.BG != c.BG {
					break
				}
				run.WriteRune(n.Glyph)
			}
			e.sb.WriteString(e.style(c.FG, c.BG).Sprint(run.String()))
		}
		e.sb.WriteString("\r\n")
	}
	return e.sb.String()
}

func rgb(c uint8) color.RGBColor {
	if c == render.ColorTransparent {
		c = render.ColorBlack
	}
	p := render.RGBA(c)
	return color.RGB(p.R, p.G, p.B)
}
