package world

// LCG constants. The galaxy generator wraps at 2^32; the spawn generator
// keeps 31 bits.
const (
	galaxyMul = 1664525
	galaxyInc = 1013904223

	spawnMul  = 1103515245
	spawnInc  = 12345
	spawnMask = 0x7fffffff
)

// GalaxyNext advances the galaxy LCG one step and returns the new state,
// which is also the drawn value.
func GalaxyNext(state uint32) (uint32, uint32) {
	next := galaxyMul*state + galaxyInc
	return next, next
}

// SpawnNext advances the spawn LCG one step.
func SpawnNext(state uint32) (uint32, uint32) {
	next := (spawnMul*state + spawnInc) & spawnMask
	return next, next
}

// GalaxyRange returns min + next mod (max-min+1).
// When max < min it returns min and leaves the state untouched.
func GalaxyRange(state uint32, min, max int) (uint32, int) {
	return rangeWith(GalaxyNext, state, min, max)
}

// SpawnRange is GalaxyRange for the spawn generator.
func SpawnRange(state uint32, min, max int) (uint32, int) {
	return rangeWith(SpawnNext, state, min, max)
}

func rangeWith(next func(uint32) (uint32, uint32), state uint32, min, max int) (uint32, int) {
	span := max - min + 1
	if span <= 0 {
		return state, min
	}
	state, v := next(state)
	return state, min + int(v%uint32(span))
}

// GalaxyRNG is a stateful wrapper around GalaxyNext used while building systems.
type GalaxyRNG struct {
	State uint32
}

// Next draws one value.
func (r *GalaxyRNG) Next() uint32 {
	var v uint32
	r.State, v = GalaxyNext(r.State)
	return v
}

// Intn returns next mod n, or 0 without advancing when n <= 0.
func (r *GalaxyRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Range draws from [min, max]. See GalaxyRange.
func (r *GalaxyRNG) Range(min, max int) int {
	var v int
	r.State, v = GalaxyRange(r.State, min, max)
	return v
}

// SpawnRNG places sprites inside a scene. Each scene seeds its own.
type SpawnRNG struct {
	State uint32
}

// NewSpawnRNG seeds a spawn generator.
func NewSpawnRNG(seed uint32) *SpawnRNG {
	return &SpawnRNG{State: seed}
}

// Next draws one value.
func (r *SpawnRNG) Next() uint32 {
	var v uint32
	r.State, v = SpawnNext(r.State)
	return v
}

// Range draws from [min, max]. See SpawnRange.
func (r *SpawnRNG) Range(min, max int) int {
	var v int
	r.State, v = SpawnRange(r.State, min, max)
	return v
}
