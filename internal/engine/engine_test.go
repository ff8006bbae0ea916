package engine

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacegame/internal/render"
)

const (
	kindA Kind = iota + 1
	kindB
	kindC
)

func newTestWorld() *World {
	return NewWorld(160, 120)
}

func TestCreateDestroyCounts(t *testing.T) {
	w := newTestWorld()
	a1 := w.Create(render.NewImage(4, 4), kindA)
	a2 := w.Create(render.NewImage(4, 4), kindA)
	w.Create(render.NewImage(4, 4), kindB)

	assert.Equal(t, 2, w.Count(kindA))
	assert.Equal(t, 1, w.Count(kindB))
	assert.Equal(t, []ecs.Entity{a1, a2}, w.Entities(kindA))

	w.Destroy(a1)
	assert.False(t, w.Alive(a1))
	assert.Equal(t, []ecs.Entity{a2}, w.Entities(kindA))

	w.Destroy(a1) // already dead
	assert.Equal(t, 1, w.Count(kindA))

	w.DestroyAll(kindA)
	assert.Zero(t, w.Count(kindA))
	assert.Equal(t, 1, w.Total())
}

func TestAlive_ZeroHandle(t *testing.T) {
	w := newTestWorld()
	assert.False(t, w.Alive(ecs.Entity{}))
	x, y := w.Position(ecs.Entity{})
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTick_MovesByVelocity(t *testing.T) {
	w := newTestWorld()
	e := w.Create(render.NewImage(2, 2), kindA)
	w.SetPosition(e, 50, 50)
	w.SetVelocity(e, 10, -20)
	w.Tick(0.5)
	x, y := w.Position(e)
	assert.InDelta(t, 55, x, 1e-9)
	assert.InDelta(t, 40, y, 1e-9)
}

func TestTick_StayInScreenClamps(t *testing.T) {
	w := newTestWorld()
	e := w.Create(render.NewImage(10, 10), kindA)
	w.SetFlags(e, FlagStayInScreen)
	w.SetPosition(e, 155, 5)
	w.SetVelocity(e, 100, -100)
	w.Tick(1)
	x, y := w.Position(e)
	assert.InDelta(t, 155, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
}

func TestTick_AutoDestroyOffscreen(t *testing.T) {
	w := newTestWorld()
	e := w.Create(render.NewImage(2, 4), kindA)
	w.SetFlags(e, FlagAutoDestroy)
	w.SetPosition(e, 80, 1)
	w.SetVelocity(e, 0, -90)
	w.Tick(0.01)
	assert.True(t, w.Alive(e), "still partly on screen")
	w.Tick(1)
	assert.False(t, w.Alive(e))
	assert.Zero(t, w.Count(kindA))
}

func TestOverlap_DispatchOncePerPairPerTick(t *testing.T) {
	w := newTestWorld()
	a := w.Create(render.NewImage(10, 10), kindA)
	b := w.Create(render.NewImage(10, 10), kindB)
	far := w.Create(render.NewImage(10, 10), kindB)
	w.SetPosition(a, 50, 50)
	w.SetPosition(b, 55, 55)
	w.SetPosition(far, 120, 100)

	var hits [][2]ecs.Entity
	w.OnOverlap(kindA, kindB, func(x, y ecs.Entity) {
		hits = append(hits, [2]ecs.Entity{x, y})
	})

	w.Tick(0)
	require.Len(t, hits, 1)
	assert.Equal(t, [2]ecs.Entity{a, b}, hits[0])

	w.Tick(0)
	assert.Len(t, hits, 2)
}

func TestOverlap_EdgesTouchingDoNotOverlap(t *testing.T) {
	w := newTestWorld()
	a := w.Create(render.NewImage(10, 10), kindA)
	b := w.Create(render.NewImage(10, 10), kindB)
	w.SetPosition(a, 50, 50)
	w.SetPosition(b, 60, 50)
	assert.False(t, w.Overlaps(a, b))
	w.SetPosition(b, 59, 50)
	assert.True(t, w.Overlaps(a, b))
}

func TestOverlap_DestroyedDuringDispatchIsSkipped(t *testing.T) {
	w := newTestWorld()
	a := w.Create(render.NewImage(10, 10), kindA)
	b1 := w.Create(render.NewImage(10, 10), kindB)
	b2 := w.Create(render.NewImage(10, 10), kindB)
	for _, e := range []ecs.Entity{a, b1, b2} {
		w.SetPosition(e, 40, 40)
	}

	calls := 0
	w.OnOverlap(kindA, kindB, func(x, y ecs.Entity) {
		calls++
		w.Destroy(x) // first contact consumes a
	})
	w.Tick(0)
	assert.Equal(t, 1, calls)
	assert.True(t, w.Alive(b2))
}

func TestOverlap_HandlerMayCreateSprites(t *testing.T) {
	w := newTestWorld()
	a := w.Create(render.NewImage(10, 10), kindA)
	b := w.Create(render.NewImage(10, 10), kindB)
	w.SetPosition(a, 40, 40)
	w.SetPosition(b, 40, 40)
	w.OnOverlap(kindA, kindB, func(x, y ecs.Entity) {
		w.Destroy(y)
		loot := w.Create(render.NewImage(4, 4), kindC)
		w.SetPosition(loot, 40, 40)
	})
	w.Tick(0)
	assert.Equal(t, 1, w.Count(kindC))
	assert.Zero(t, w.Count(kindB))
}

func TestStick_DrivesBoundSprite(t *testing.T) {
	w := newTestWorld()
	e := w.Create(render.NewImage(4, 4), kindA)
	w.SetPosition(e, 80, 60)
	w.BindStick(e, 60, 60)
	w.SetStick(1, -2)
	w.Tick(0.5)
	x, y := w.Position(e)
	assert.InDelta(t, 110, x, 1e-9)
	assert.InDelta(t, 30, y, 1e-9, "stick axes clamp to -1..1")

	w.Destroy(e)
	other := w.Create(render.NewImage(4, 4), kindA)
	w.Tick(0.5)
	vx, vy := w.Velocity(other)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestSignals(t *testing.T) {
	w := newTestWorld()
	_, ok := w.PopSplash()
	assert.False(t, ok)

	w.Splash("one")
	w.Splash("two")
	msg, ok := w.PopSplash()
	assert.True(t, ok)
	assert.Equal(t, "one", msg)

	w.GameOver(false)
	w.GameOver(true)
	over, won := w.Outcome()
	assert.True(t, over)
	assert.False(t, won, "first signal decides")
	assert.Equal(t, 2, w.GameOverSignals())
}

func TestDraw_OrdersByZThenCreation(t *testing.T) {
	w := newTestWorld()
	top := w.Create(render.NewImage(1, 1), kindA)
	w.SetZ(top, 10)
	w.Create(render.NewImage(2, 2), kindB)
	w.Create(render.NewImage(3, 3), kindC)

	var widths []int
	w.Draw(func(s *Sprite, p Position) {
		widths = append(widths, s.Image.W)
	})
	assert.Equal(t, []int{2, 3, 1}, widths)
}
