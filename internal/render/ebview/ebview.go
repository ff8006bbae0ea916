// Package ebview draws an engine world to an Ebitengine screen.
package ebview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

// textScale is the magnification of HUD text relative to the screen.
const textScale = 2

type cached struct {
	img *ebiten.Image
	rev uint64
}

// Renderer draws the sprite world at its native size, scaled up, and the
// HUD text at a finer resolution on top.
type Renderer struct {
	Scale int

	world   *ebiten.Image
	overlay *render.Image
	cache   map[*render.Image]*cached
	buf     []byte
}

// NewRenderer creates a renderer for a world of the given size drawn at scale.
func NewRenderer(width, height, scale int) *Renderer {
	scale = max(scale, textScale)
	return &Renderer{
		Scale:   scale,
		world:   ebiten.NewImage(width, height),
		overlay: render.NewImage(width*scale/textScale, height*scale/textScale),
		cache:   make(map[*render.Image]*cached),
	}
}

// Size returns the screen size in pixels.
func (r *Renderer) Size() (int, int) {
	b := r.world.Bounds()
	return b.Dx() * r.Scale, b.Dy() * r.Scale
}

func (r *Renderer) upload(img *render.Image) *ebiten.Image {
	c, ok := r.cache[img]
	if !ok {
		c = &cached{img: ebiten.NewImage(max(img.W, 1), max(img.H, 1)), rev: img.Rev() + 1}
		r.cache[img] = c
	}
	if c.rev != img.Rev() && img.W > 0 && img.H > 0 {
		r.buf = img.AppendRGBA(r.buf[:0])
		c.img.WritePixels(r.buf)
		c.rev = img.Rev()
	}
	return c.img
}

// Draw clears to the world background, draws every sprite centered on its
// position, then the HUD line and the footer lines.
func (r *Renderer) Draw(screen *ebiten.Image, w *engine.World, hud string, footer []string) {
	r.world.Fill(render.RGBA(w.Background()))

	seen := make(map[*render.Image]bool, len(r.cache))
	w.Draw(func(s *engine.Sprite, p engine.Position) {
		seen[s.Image] = true
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X-float64(s.Image.W)/2, p.Y-float64(s.Image.H)/2)
		r.world.DrawImage(r.upload(s.Image), op)
	})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Scale), float64(r.Scale))
	screen.DrawImage(r.world, op)

	r.drawText(hud, footer)
	seen[r.overlay] = true
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	screen.DrawImage(r.upload(r.overlay), op)

	// Drop uploads for sprites that no longer exist.
	for img, c := range r.cache {
		if !seen[img] {
			c.img.Deallocate()
			delete(r.cache, img)
		}
	}
}

func (r *Renderer) drawText(hud string, footer []string) {
	o := r.overlay
	o.Fill(render.ColorTransparent)
	if hud != "" {
		o.FillRect(0, 0, o.W, render.GlyphHeight+2, render.ColorBlack)
		o.Print(hud, 3, 1, render.ColorWhite)
	}
	y := o.H - len(footer)*render.GlyphHeight - 1
	for _, line := range footer {
		o.FillRect(0, y, o.W, render.GlyphHeight, render.ColorBlack)
		o.Print(line, 3, y, render.ColorYellow)
		y += render.GlyphHeight
	}
}
