package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

func landOn(t *testing.T, p world.Planet) (*Session, *engine.World) {
	t.Helper()
	s, eng := newTestSession(t)
	s.planet = p
	s.enter(ScenePlanet)
	require.NotNil(t, s.Visit())
	return s, eng
}

func TestPlanet_SpawnsFromPlanetStats(t *testing.T) {
	p := world.Planet{Biome: world.BiomeDesert, Size: 20, Hostility: 50, Richness: 3}
	s, eng := landOn(t, p)

	assert.Equal(t, 5, eng.Count(KindResource))
	assert.Equal(t, 2, eng.Count(KindHostile))
	assert.Equal(t, 1, eng.Count(KindExplorer))
	assert.Equal(t, world.BiomeDesert.Color(), eng.Background())
	assert.Equal(t, MaxFuel-FuelPerLanding, s.Player().Fuel)
	assert.Equal(t, "Res 0 | Fuel 95 | Hull 5", s.HUD())

	rng := world.NewSpawnRNG(20)
	for _, e := range eng.Entities(KindResource) {
		x, y := eng.Position(e)
		assert.Equal(t, float64(rng.Range(10, 150)), x)
		assert.Equal(t, float64(rng.Range(10, 110)), y)
	}
	rng = world.NewSpawnRNG(50)
	for _, e := range eng.Entities(KindHostile) {
		rng.Range(10, 150)
		rng.Range(10, 110)
		vx, vy := eng.Velocity(e)
		assert.Equal(t, float64(rng.Range(-30, 30)), vx)
		assert.Equal(t, float64(rng.Range(-30, 30)), vy)
	}
}

func TestPlanet_CollectAllShowsDepartHint(t *testing.T) {
	s, eng := landOn(t, world.Planet{Size: 20, Richness: 3})
	explorer := s.Visit().Explorer

	for _, node := range eng.Entities(KindResource) {
		if !eng.Alive(node) {
			continue // picked up together with a neighbour
		}
		x, y := eng.Position(node)
		eng.SetPosition(explorer, x, y)
		eng.Tick(0)
	}

	assert.Zero(t, eng.Count(KindResource))
	assert.Equal(t, 5, s.Player().Resources)
	assert.Equal(t, "Resources gathered! B:Depart", s.HUD())
	assert.Equal(t, ScenePlanet, s.Scene(), "no forced transition")
	assert.True(t, s.Visit().Gathered)
}

func TestPlanet_FuelFloorsAtZero(t *testing.T) {
	eng := engine.NewWorld(world.ScreenWidth, world.ScreenHeight)
	s := NewSession(eng, Options{Now: fixedClock})
	s.Start(testSeed)
	s.player.Fuel = 3
	s.planet = world.Planet{Size: 20, Richness: 1}
	s.enter(ScenePlanet)
	assert.Equal(t, 0, s.Player().Fuel)
}

func TestPlanet_HostileBouncesAndDamages(t *testing.T) {
	s, eng := landOn(t, world.Planet{Size: 20, Hostility: 30, Richness: 1})
	for _, node := range eng.Entities(KindResource) {
		eng.SetPosition(node, 150, 110)
	}
	hostiles := eng.Entities(KindHostile)
	require.Len(t, hostiles, 1)
	h := hostiles[0]
	eng.SetPosition(h, 80, 60)
	eng.SetVelocity(h, 12, -7)

	eng.Tick(0)
	vx, vy := eng.Velocity(h)
	assert.Equal(t, -12.0, vx)
	assert.Equal(t, 7.0, vy)
	assert.True(t, eng.Alive(h), "hostiles persist")
	assert.Equal(t, 4, s.Player().Hull)
	assert.Equal(t, 3, s.Player().Shield, "surface hits bypass the shield")
	assert.Equal(t, "Res 0 | Fuel 95 | Hull 4", s.HUD())
}

func TestPlanet_HostileCanEndGame(t *testing.T) {
	s, eng := landOn(t, world.Planet{Size: 20, Hostility: 30, Richness: 1})
	s.player.Hull = 1
	eng.SetPosition(eng.Entities(KindHostile)[0], 80, 60)
	eng.Tick(0)
	eng.Tick(0)

	over, _ := eng.Outcome()
	assert.True(t, over)
	assert.Equal(t, 1, eng.GameOverSignals())
}

func TestPlanet_Buttons(t *testing.T) {
	s, eng := landOn(t, world.Planet{Size: 20, Richness: 1})
	s.systems[s.active].HasStation = false
	s.Press(ButtonA)
	assert.Equal(t, ScenePlanet, s.Scene())

	s.systems[s.active].HasStation = true
	s.Press(ButtonA)
	assert.Equal(t, SceneStation, s.Scene())
	assert.Zero(t, eng.Count(KindExplorer))

	s.planet = world.Planet{Size: 20, Richness: 1}
	s.enter(ScenePlanet)
	s.Press(ButtonB)
	assert.Equal(t, SceneGalaxy, s.Scene())
	for _, k := range []engine.Kind{KindExplorer, KindResource, KindHostile} {
		assert.Zero(t, eng.Count(k))
	}
}
