package engine

import (
	"math"

	"github.com/mlange-42/ark/ecs"
)

// Tick advances the world by dt seconds: stick input, movement and
// screen bounds, then overlap events. Handlers run after every query has
// closed, so they may create and destroy sprites freely.
func (w *World) Tick(dt float64) {
	w.Ticks++
	w.applyStick()
	w.integrate(dt)
	w.dispatchOverlaps()
}

func (w *World) applyStick() {
	if !w.stick.bound {
		return
	}
	if !w.Alive(w.stick.entity) {
		w.UnbindStick()
		return
	}
	w.SetVelocity(w.stick.entity, w.stick.dx*w.stick.speedX, w.stick.dy*w.stick.speedY)
}

func (w *World) integrate(dt float64) {
	width := float64(w.Width)
	height := float64(w.Height)

	var offscreen []ecs.Entity
	q := ecs.NewFilter3[Sprite, Position, Velocity](w.registry).Query()
	for q.Next() {
		s, p, v := q.Get()
		p.X += v.X * dt
		p.Y += v.Y * dt

		hw := float64(s.Image.W) / 2
		hh := float64(s.Image.H) / 2

		if s.Flags&FlagStayInScreen != 0 {
			p.X = clamp(p.X, hw, width-hw)
			p.Y = clamp(p.Y, hh, height-hh)
		}
		if s.Flags&FlagAutoDestroy != 0 {
			if p.X+hw < 0 || p.X-hw > width || p.Y+hh < 0 || p.Y-hh > height {
				offscreen = append(offscreen, q.Entity())
			}
		}
	}
	for _, e := range offscreen {
		w.Destroy(e)
	}
}

func (w *World) dispatchOverlaps() {
	for _, sub := range w.overlaps {
		as := w.Entities(sub.a)
		bs := w.Entities(sub.b)
		for _, a := range as {
			for _, b := range bs {
				if !w.Alive(a) {
					break
				}
				if a == b || !w.Alive(b) {
					continue
				}
				if w.Overlaps(a, b) {
					sub.fn(a, b)
				}
			}
		}
	}
}

// Overlaps reports whether two live sprites' bounding boxes intersect.
// Boxes that only touch edges do not overlap.
func (w *World) Overlaps(a, b ecs.Entity) bool {
	if !w.Alive(a) || !w.Alive(b) {
		return false
	}
	sa, pa := w.sprites.Get(a), w.pos.Get(a)
	sb, pb := w.sprites.Get(b), w.pos.Get(b)
	halfW := float64(sa.Image.W+sb.Image.W) / 2
	halfH := float64(sa.Image.H+sb.Image.H) / 2
	return math.Abs(pa.X-pb.X) < halfW && math.Abs(pa.Y-pb.Y) < halfH
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(v, hi))
}
