package world

// Biome determines a planet's surface color.
type Biome uint8

const (
	BiomeIce Biome = iota
	BiomeDesert
	BiomeJungle
	BiomeVolcanic
	BiomeOcean
	BiomeCrystal
	biomeCount
)

var biomeTable = [biomeCount]struct {
	Name  string
	Color uint8
}{
	BiomeIce:      {"ice", 9},
	BiomeDesert:   {"desert", 4},
	BiomeJungle:   {"jungle", 7},
	BiomeVolcanic: {"volcanic", 6},
	BiomeOcean:    {"ocean", 1},
	BiomeCrystal:  {"crystal", 5},
}

func (b Biome) String() string {
	if b < biomeCount {
		return biomeTable[b].Name
	}
	return "unknown"
}

// Color returns the surface background color for the biome.
func (b Biome) Color() uint8 {
	if b < biomeCount {
		return biomeTable[b].Color
	}
	return 3
}

// Planet is a landable body in a system.
type Planet struct {
	SystemIndex int
	PlanetIndex int
	Biome       Biome
	Size        int // 16-39
	Hostility   int // 0-99
	Richness    int // 1-3
}

// ResourceNodes is how many resource pickups a visit spawns.
func (p Planet) ResourceNodes() int {
	return p.Richness + 2
}

// HostileCount buckets hostility into the number of roamers on the surface.
func (p Planet) HostileCount() int {
	switch {
	case p.Hostility > 70:
		return 3
	case p.Hostility > 40:
		return 2
	case p.Hostility > 20:
		return 1
	default:
		return 0
	}
}

// generatePlanet continues the owning system's stream; draw order matters.
func generatePlanet(systemIndex, planetIndex int, rng *GalaxyRNG) Planet {
	biome := Biome(rng.Intn(int(biomeCount)))
	size := 16 + rng.Intn(24)
	hostility := rng.Intn(100)
	richness := 1 + rng.Intn(3)
	return Planet{
		SystemIndex: systemIndex,
		PlanetIndex: planetIndex,
		Biome:       biome,
		Size:        size,
		Hostility:   hostility,
		Richness:    richness,
	}
}
