// Package engine is a headless sprite world: entity lifecycle, movement,
// overlap events and the terminal signals a scene can raise.
// Frontends draw it; the game only talks to it through handles.
package engine

import (
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

// OverlapFunc receives the two overlapping sprites in subscription order.
type OverlapFunc func(a, b ecs.Entity)

type overlapSub struct {
	a, b Kind
	fn   OverlapFunc
}

type stickBinding struct {
	entity ecs.Entity
	bound  bool
	speedX float64
	speedY float64
	dx, dy float64 // current input, -1..1 per axis
}

// World owns every sprite entity. It is not safe for concurrent use;
// one frame loop drives it.
type World struct {
	Width  int
	Height int

	registry *ecs.World
	sprites  *ecs.Map[Sprite]
	pos      *ecs.Map[Position]
	vel      *ecs.Map[Velocity]

	byKind   map[Kind][]ecs.Entity
	overlaps []overlapSub
	stick    stickBinding
	seq      uint64
	Ticks    uint64

	background  uint8
	splashes    []string
	over        bool
	won         bool
	overSignals int
}

var noEntity ecs.Entity

// NewWorld creates a sprite world for a viewport of the given size.
func NewWorld(width, height int) *World {
	w := ecs.NewWorld(256)
	return &World{
		Width:    width,
		Height:   height,
		registry: w,
		sprites:  ecs.NewMap[Sprite](w),
		pos:      ecs.NewMap[Position](w),
		vel:      ecs.NewMap[Velocity](w),
		byKind:   make(map[Kind][]ecs.Entity),
	}
}

// ECS exposes the underlying registry so callers can attach their own
// components to sprite handles.
func (w *World) ECS() *ecs.World { return w.registry }

// Create spawns a sprite at the origin with zero velocity.
func (w *World) Create(img *render.Image, kind Kind) ecs.Entity {
	if img == nil {
		img = render.NewImage(1, 1)
	}
	w.seq++
	e := ecs.NewMap3[Sprite, Position, Velocity](w.registry).NewEntity(
		&Sprite{Image: img, Kind: kind, seq: w.seq},
		&Position{},
		&Velocity{},
	)
	w.byKind[kind] = append(w.byKind[kind], e)
	return e
}

// Alive reports whether e is a live sprite.
func (w *World) Alive(e ecs.Entity) bool {
	return e != noEntity && w.registry.Alive(e)
}

// Destroy removes a sprite. Destroying a dead handle is a no-op.
func (w *World) Destroy(e ecs.Entity) {
	if !w.Alive(e) {
		return
	}
	kind := w.sprites.Get(e).Kind
	list := w.byKind[kind]
	if i := slices.Index(list, e); i >= 0 {
		w.byKind[kind] = slices.Delete(list, i, i+1)
	}
	if w.stick.bound && w.stick.entity == e {
		w.UnbindStick()
	}
	w.registry.RemoveEntity(e)
}

// DestroyAll removes every sprite of a kind.
func (w *World) DestroyAll(kind Kind) {
	for _, e := range w.Entities(kind) {
		w.Destroy(e)
	}
}

// Count returns the number of live sprites of a kind.
func (w *World) Count(kind Kind) int {
	return len(w.byKind[kind])
}

// Entities returns the live sprites of a kind in creation order.
// The slice is a copy; callers may destroy while ranging over it.
func (w *World) Entities(kind Kind) []ecs.Entity {
	return slices.Clone(w.byKind[kind])
}

// Total returns the number of live sprites of every kind.
func (w *World) Total() int {
	n := 0
	for _, list := range w.byKind {
		n += len(list)
	}
	return n
}

// KindOf returns the kind of a live sprite.
func (w *World) KindOf(e ecs.Entity) (Kind, bool) {
	if !w.Alive(e) {
		return 0, false
	}
	return w.sprites.Get(e).Kind, true
}

// Image returns the sprite's image, or nil for a dead handle.
func (w *World) Image(e ecs.Entity) *render.Image {
	if !w.Alive(e) {
		return nil
	}
	return w.sprites.Get(e).Image
}

// Position returns the sprite center.
func (w *World) Position(e ecs.Entity) (float64, float64) {
	if !w.Alive(e) {
		return 0, 0
	}
	p := w.pos.Get(e)
	return p.X, p.Y
}

// SetPosition moves the sprite center.
func (w *World) SetPosition(e ecs.Entity, x, y float64) {
	if !w.Alive(e) {
		return
	}
	p := w.pos.Get(e)
	p.X, p.Y = x, y
}

// Velocity returns the sprite velocity in pixels per second.
func (w *World) Velocity(e ecs.Entity) (float64, float64) {
	if !w.Alive(e) {
		return 0, 0
	}
	v := w.vel.Get(e)
	return v.X, v.Y
}

// SetVelocity sets the sprite velocity in pixels per second.
func (w *World) SetVelocity(e ecs.Entity, vx, vy float64) {
	if !w.Alive(e) {
		return
	}
	v := w.vel.Get(e)
	v.X, v.Y = vx, vy
}

// SetFlags replaces the sprite's flags.
func (w *World) SetFlags(e ecs.Entity, f Flags) {
	if !w.Alive(e) {
		return
	}
	w.sprites.Get(e).Flags = f
}

// SetZ sets the draw order; higher draws on top.
func (w *World) SetZ(e ecs.Entity, z int) {
	if !w.Alive(e) {
		return
	}
	w.sprites.Get(e).Z = z
}

// SetBackground sets the palette index cleared behind all sprites.
func (w *World) SetBackground(c uint8) { w.background = c }

// Background returns the current background color.
func (w *World) Background() uint8 { return w.background }

// OnOverlap subscribes fn to overlaps between kinds a and b.
// Register once at startup; every registration fires independently.
func (w *World) OnOverlap(a, b Kind, fn OverlapFunc) {
	w.overlaps = append(w.overlaps, overlapSub{a: a, b: b, fn: fn})
}

// BindStick makes the analog stick drive e at the given speeds.
func (w *World) BindStick(e ecs.Entity, speedX, speedY float64) {
	w.stick.entity = e
	w.stick.bound = true
	w.stick.speedX = speedX
	w.stick.speedY = speedY
}

// UnbindStick releases the stick.
func (w *World) UnbindStick() {
	w.stick.entity = noEntity
	w.stick.bound = false
}

// SetStick records the held direction, each axis in -1..1.
func (w *World) SetStick(dx, dy float64) {
	w.stick.dx = max(-1, min(dx, 1))
	w.stick.dy = max(-1, min(dy, 1))
}

// Splash queues a blocking message for the frontend.
func (w *World) Splash(msg string) {
	w.splashes = append(w.splashes, msg)
}

// PopSplash returns the oldest queued splash message.
func (w *World) PopSplash() (string, bool) {
	if len(w.splashes) == 0 {
		return "", false
	}
	msg := w.splashes[0]
	w.splashes = w.splashes[1:]
	return msg, true
}

// GameOver ends the session. Only the first signal decides the outcome.
func (w *World) GameOver(won bool) {
	w.overSignals++
	if w.over {
		return
	}
	w.over = true
	w.won = won
}

// Outcome reports whether the game has ended and how.
func (w *World) Outcome() (over, won bool) {
	return w.over, w.won
}

// GameOverSignals counts GameOver calls, including repeats.
func (w *World) GameOverSignals() int { return w.overSignals }

// Draw visits every sprite back to front (by Z, then creation order).
func (w *World) Draw(fn func(s *Sprite, p Position)) {
	type item struct {
		s *Sprite
		p Position
	}
	var items []item
	q := ecs.NewFilter2[Sprite, Position](w.registry).Query()
	for q.Next() {
		s, p := q.Get()
		items = append(items, item{s: s, p: *p})
	}
	slices.SortFunc(items, func(a, b item) int {
		if a.s.Z != b.s.Z {
			return a.s.Z - b.s.Z
		}
		switch {
		case a.s.seq < b.s.seq:
			return -1
		case a.s.seq > b.s.seq:
			return 1
		}
		return 0
	})
	for _, it := range items {
		fn(it.s, it.p)
	}
}
