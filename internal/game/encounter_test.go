package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

// park moves every enemy into the bottom-right corner, away from the ship.
func park(eng *engine.World) {
	for _, e := range eng.Entities(KindEnemy) {
		eng.SetPosition(e, 150, 110)
		eng.SetVelocity(e, 0, 0)
	}
}

func TestSpace_SpawnsSeededWave(t *testing.T) {
	s, eng := newTestSession(t)
	sys := enterSystem(t, s, anySystem)

	enemies := eng.Entities(KindEnemy)
	require.Len(t, enemies, MaxEnemies)
	assert.Equal(t, uint8(render.ColorTeal), eng.Background())
	assert.Equal(t, "Hull 5 | Shield 3 | Cr 0", s.HUD())

	rng := world.NewSpawnRNG(sys.Seed)
	for _, e := range enemies {
		x, y := eng.Position(e)
		vx, vy := eng.Velocity(e)
		assert.Equal(t, float64(rng.Range(10, 150)), x)
		assert.Equal(t, float64(rng.Range(10, 110)), y)
		assert.Equal(t, float64(rng.Range(-40, 40)), vx)
		assert.Equal(t, float64(rng.Range(-40, 40)), vy)
		assert.Equal(t, 2+sys.Difficulty, s.enemies.Get(e).HP)
		assert.Equal(t, render.EnemyTierColor(sys.Difficulty), eng.Image(e).Dominant())
	}

	ship := s.Encounter().Ship
	x, y := eng.Position(ship)
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 60.0, y)
	assert.Equal(t, ShipState{Shield: 3, Hull: 5}, *s.ships.Get(ship))
}

func TestSpace_SameSystemSameWave(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	first := positions(eng, KindEnemy)

	s.Press(ButtonMenu)
	s.Press(ButtonA)
	assert.Equal(t, first, positions(eng, KindEnemy))
}

func positions(eng *engine.World, kind engine.Kind) []string {
	var out []string
	for _, e := range eng.Entities(kind) {
		x, y := eng.Position(e)
		out = append(out, fmt.Sprintf("%.0f,%.0f", x, y))
	}
	return out
}

func TestFire_ProjectileCarriesWeaponDamage(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	s.player.Weapon = 2

	s.Press(ButtonA)
	shots := eng.Entities(KindProjectile)
	require.Len(t, shots, 1)
	assert.Equal(t, 3, s.shots.Get(shots[0]).Damage)
	vx, vy := eng.Velocity(shots[0])
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, -90.0, vy)
	x, y := eng.Position(shots[0])
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 60.0, y)
}

func TestShot_KillsEnemyAndDropsLoot(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	park(eng)
	s.player.Weapon = 2

	target := eng.Entities(KindEnemy)[0]
	s.enemies.Get(target).HP = 2
	eng.SetPosition(target, 20, 20)

	s.Press(ButtonA)
	shot := eng.Entities(KindProjectile)[0]
	eng.SetPosition(shot, 20, 20)
	eng.Tick(0)

	assert.False(t, eng.Alive(target))
	assert.False(t, eng.Alive(shot))
	assert.Equal(t, MaxEnemies-1, eng.Count(KindEnemy))
	loot := eng.Entities(KindLoot)
	require.Len(t, loot, 1)
	x, y := eng.Position(loot[0])
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 20.0, y)
	assert.False(t, s.Encounter().Finished())
}

func TestShot_WoundsEnemy(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	park(eng)

	target := eng.Entities(KindEnemy)[0]
	s.enemies.Get(target).HP = 3
	eng.SetPosition(target, 20, 20)
	s.Press(ButtonA)
	eng.SetPosition(eng.Entities(KindProjectile)[0], 20, 20)
	eng.Tick(0)

	require.True(t, eng.Alive(target))
	assert.Equal(t, 2, s.enemies.Get(target).HP)
	assert.Zero(t, eng.Count(KindLoot))
}

func TestClearingWave_ShowsVictoryAndPaysLoot(t *testing.T) {
	s, eng := newTestSession(t)
	sys := enterSystem(t, s, anySystem)

	for i, e := range eng.Entities(KindEnemy) {
		s.enemies.Get(e).HP = 1
		eng.SetPosition(e, float64(20+30*i), 20)
		eng.SetVelocity(e, 0, 0)
		s.Press(ButtonA)
	}
	for i, shot := range eng.Entities(KindProjectile) {
		eng.SetPosition(shot, float64(20+30*i), 20)
	}
	eng.Tick(0)

	assert.Zero(t, eng.Count(KindEnemy))
	assert.Equal(t, MaxEnemies, eng.Count(KindLoot))
	require.True(t, s.Encounter().Finished())
	if sys.HasStation {
		assert.Equal(t, "Victory! A:Land  B:Station", s.HUD())
	} else {
		assert.Equal(t, "Victory! A:Land  B:Map", s.HUD())
	}

	eng.SetPosition(s.Encounter().Ship, 20, 20)
	eng.Tick(0)
	assert.Equal(t, LootCredits, s.Player().Credits)
	assert.Equal(t, MaxEnemies-1, eng.Count(KindLoot))
	assert.Contains(t, s.HUD(), "Victory!", "finished wave keeps the victory line")
}

func TestRam_ShieldThenHullAndWaveFinishes(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	ship := s.Encounter().Ship
	for _, e := range eng.Entities(KindEnemy) {
		eng.SetPosition(e, 80, 60)
		eng.SetVelocity(e, 0, 0)
	}
	eng.Tick(0)

	p := s.Player()
	assert.Equal(t, 0, p.Shield)
	assert.Equal(t, 4, p.Hull)
	assert.Equal(t, ShipState{Shield: 0, Hull: 4}, *s.ships.Get(ship))
	assert.Zero(t, eng.Count(KindEnemy))
	assert.Zero(t, eng.Count(KindLoot), "rammed enemies drop nothing")
	assert.True(t, s.Encounter().Finished())
}

func TestRam_GameOverExactlyOnce(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	s.player.Shield = 0
	s.player.Hull = 1
	for _, e := range eng.Entities(KindEnemy) {
		eng.SetPosition(e, 80, 60)
		eng.SetVelocity(e, 0, 0)
	}
	eng.Tick(0)
	eng.Tick(0)

	over, won := eng.Outcome()
	assert.True(t, over)
	assert.False(t, won)
	assert.Equal(t, 1, eng.GameOverSignals())
	assert.Equal(t, 0, s.Player().Hull)
}

func TestLoot_PickupPaysCredits(t *testing.T) {
	s, eng := newTestSession(t)
	enterSystem(t, s, anySystem)
	park(eng)

	loot := s.encounter.scope.spawn(render.LootImage(), KindLoot)
	eng.SetPosition(loot, 80, 60)
	eng.Tick(0)
	assert.Equal(t, LootCredits, s.Player().Credits)
	assert.Equal(t, "Hull 5 | Shield 3 | Cr 5", s.HUD())
	assert.False(t, eng.Alive(loot))
}
