package engine

import "github.com/spacehole-rogue/spacegame/internal/render"

// Kind groups sprites for overlap subscriptions and bulk destruction.
type Kind uint8

// Flags control per-sprite engine behavior.
type Flags uint8

const (
	// FlagStayInScreen clamps the sprite inside the viewport.
	FlagStayInScreen Flags = 1 << iota
	// FlagAutoDestroy removes the sprite once it leaves the viewport.
	FlagAutoDestroy
)

// Sprite is the render and grouping component every engine entity carries.
type Sprite struct {
	Image *render.Image
	Kind  Kind
	Z     int
	Flags Flags
	seq   uint64 // creation order, used for stable iteration
}

// Position is the sprite center in screen pixels.
type Position struct {
	X, Y float64
}

// Velocity is in pixels per second.
type Velocity struct {
	X, Y float64
}
