// Package world holds the deterministic galaxy generator and its LCG streams.
package world

// StarType determines the color of a star on the galaxy map.
type StarType uint8

const (
	StarRed StarType = iota
	StarYellow
	StarBlue
	StarBinary
	StarPulsar
	starTypeCount
)

var starTable = [starTypeCount]struct {
	Name  string
	Color uint8
}{
	StarRed:    {"red", 2},
	StarYellow: {"yellow", 5},
	StarBlue:   {"blue", 8},
	StarBinary: {"binary", 7},
	StarPulsar: {"pulsar", 1},
}

func (t StarType) String() string {
	if t < starTypeCount {
		return starTable[t].Name
	}
	return "unknown"
}

// Color returns the palette index used to draw the star.
func (t StarType) Color() uint8 {
	if t < starTypeCount {
		return starTable[t].Color
	}
	return 7
}

// Galaxy layout
const (
	SystemCount    = 25
	SystemsPerRow  = 5
	systemSeedStep = 7919

	ScreenWidth  = 160
	ScreenHeight = 120

	marginX = 20
	marginY = 12
)

// System is one star on the galaxy map. Systems never change after generation.
type System struct {
	Index      int
	Seed       uint32 // generator state after every draw; seeds the combat wave
	Star       StarType
	Difficulty int // 1-4
	HasStation bool
	Planets    []Planet
}

// SystemSeed derives the independent stream seed for one system.
func SystemSeed(rootSeed uint32, index int) uint32 {
	return rootSeed + uint32(index)*systemSeedStep
}

// BuildGalaxy generates every system from a root seed.
func BuildGalaxy(rootSeed uint32) []System {
	systems := make([]System, 0, SystemCount)
	for i := 0; i < SystemCount; i++ {
		systems = append(systems, GenerateSystem(rootSeed, i))
	}
	return systems
}

// GenerateSystem builds a single system without replaying the others.
// Draw order is fixed: star, difficulty, station, planet count, then planets.
func GenerateSystem(rootSeed uint32, index int) System {
	rng := &GalaxyRNG{State: SystemSeed(rootSeed, index)}

	star := StarType(rng.Intn(int(starTypeCount)))
	difficulty := 1 + rng.Intn(4)
	hasStation := rng.Intn(100) < 20
	planetCount := 1 + rng.Intn(3)

	planets := make([]Planet, 0, planetCount)
	for p := 0; p < planetCount; p++ {
		planets = append(planets, generatePlanet(index, p, rng))
	}

	return System{
		Index:      index,
		Seed:       rng.State,
		Star:       star,
		Difficulty: difficulty,
		HasStation: hasStation,
		Planets:    planets,
	}
}

// SystemCoordinates places a system on the 5-column map grid.
// Stars and the cursor both use this, so they always line up.
func SystemCoordinates(index int) (int, int) {
	col := index % SystemsPerRow
	row := index / SystemsPerRow
	spacingX := (ScreenWidth - 2*marginX) / (SystemsPerRow - 1)
	spacingY := (ScreenHeight - 2*marginY) / (SystemCount/SystemsPerRow - 1)
	return marginX + spacingX*col, marginY + spacingY*row
}

// ClampCursor keeps a cursor index inside the galaxy.
func ClampCursor(index int) int {
	if index < 0 {
		return 0
	}
	if index >= SystemCount {
		return SystemCount - 1
	}
	return index
}

// MoveCursor moves a cursor index on the map grid by (dx, dy),
// clamping at the grid edges instead of wrapping.
func MoveCursor(index, dx, dy int) int {
	index = ClampCursor(index)
	row := index/SystemsPerRow + dy
	col := index%SystemsPerRow + dx

	maxRow := (SystemCount - 1) / SystemsPerRow
	row = max(0, min(row, maxRow))
	col = max(0, min(col, SystemsPerRow-1))

	return ClampCursor(row*SystemsPerRow + col)
}
