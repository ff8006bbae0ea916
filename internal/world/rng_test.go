package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGalaxyNext_KnownValues(t *testing.T) {
	s, v := GalaxyNext(0)
	assert.Equal(t, uint32(1013904223), s)
	assert.Equal(t, s, v)

	s, _ = GalaxyNext(1)
	assert.Equal(t, uint32(1015568748), s)
}

func TestGalaxyNext_WrapsAt32Bits(t *testing.T) {
	s, _ := GalaxyNext(0xffffffff)
	// 1664525*(2^32-1) + 1013904223 mod 2^32 == 1013904223 - 1664525
	assert.Equal(t, uint32(1013904223-1664525), s)
}

func TestSpawnNext_KnownSequence(t *testing.T) {
	var s uint32
	var want = []uint32{12345, 1406932606, 654583775}
	for _, w := range want {
		s, _ = SpawnNext(s)
		assert.Equal(t, w, s)
	}
}

func TestSpawnNext_StaysIn31Bits(t *testing.T) {
	s := uint32(0xffffffff)
	for i := 0; i < 1000; i++ {
		s, _ = SpawnNext(s)
		assert.Less(t, s, uint32(1<<31))
	}
}

func TestRange_DegenerateKeepsState(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 0xdeadbeef} {
		s, v := GalaxyRange(seed, 10, 5)
		assert.Equal(t, seed, s, "galaxy state must not advance")
		assert.Equal(t, 10, v)

		s, v = SpawnRange(seed, 3, 2)
		assert.Equal(t, seed, s, "spawn state must not advance")
		assert.Equal(t, 3, v)
	}
}

func TestRange_Bounds(t *testing.T) {
	r := NewSpawnRNG(99)
	for i := 0; i < 500; i++ {
		v := r.Range(-40, 40)
		assert.GreaterOrEqual(t, v, -40)
		assert.LessOrEqual(t, v, 40)
	}
}

func TestRange_SingleValueAdvances(t *testing.T) {
	s, v := SpawnRange(7, 5, 5)
	assert.Equal(t, 5, v)
	assert.NotEqual(t, uint32(7), s)
}

func TestGalaxyRNG_IntnNonPositive(t *testing.T) {
	r := &GalaxyRNG{State: 123}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	assert.Equal(t, uint32(123), r.State)
}

func TestSpawnRNG_MatchesFunctionalForm(t *testing.T) {
	r := NewSpawnRNG(2024)
	state := uint32(2024)
	for i := 0; i < 20; i++ {
		var want int
		state, want = SpawnRange(state, 10, 150)
		assert.Equal(t, want, r.Range(10, 150))
		assert.Equal(t, state, r.State)
	}
}
