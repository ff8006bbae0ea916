package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

// Combat tuning.
const (
	MaxEnemies    = 4
	shipSpeed     = 60
	laserSpeed    = -90
	spaceCenterX  = 80
	spaceCenterY  = 60
	spawnMinX     = 10
	spawnMaxX     = 150
	spawnMinY     = 10
	spawnMaxY     = 110
	enemyMaxSpeed = 40
)

// EncounterStatus tracks the wave's progress.
type EncounterStatus uint8

const (
	EncounterActive EncounterStatus = iota
	EncounterFinished
)

// Encounter is the combat state for one visit to a system.
type Encounter struct {
	System world.System
	Status EncounterStatus
	Ship   ecs.Entity

	scope *scope
}

// Finished reports whether the wave has been cleared.
func (e *Encounter) Finished() bool {
	return e != nil && e.Status == EncounterFinished
}

func (s *Session) setupSpace() {
	sys := s.ActiveSystem()
	enc := &Encounter{
		System: sys,
		Status: EncounterActive,
		scope:  newScope(s.eng, KindShip, KindEnemy, KindLoot, KindProjectile),
	}
	s.encounter = enc
	s.eng.SetBackground(render.ColorTeal)

	enc.Ship = enc.scope.spawn(render.ShipImage(), KindShip)
	s.eng.SetFlags(enc.Ship, engine.FlagStayInScreen)
	s.eng.SetPosition(enc.Ship, spaceCenterX, spaceCenterY)
	s.eng.BindStick(enc.Ship, shipSpeed, shipSpeed)
	s.ships.Add(enc.Ship, &ShipState{Shield: s.player.Shield, Hull: s.player.Hull})

	s.spawnWave(enc)
	s.refreshCombatHUD()
}

// spawnWave places MaxEnemies enemies from a spawn stream seeded by the
// system. Each enemy draws x, y, vx, vy in that order.
func (s *Session) spawnWave(enc *Encounter) {
	rng := world.NewSpawnRNG(enc.System.Seed)
	img := render.EnemyImage(render.EnemyTierColor(enc.System.Difficulty))
	for range MaxEnemies {
		e := enc.scope.spawn(img, KindEnemy)
		x := rng.Range(spawnMinX, spawnMaxX)
		y := rng.Range(spawnMinY, spawnMaxY)
		vx := rng.Range(-enemyMaxSpeed, enemyMaxSpeed)
		vy := rng.Range(-enemyMaxSpeed, enemyMaxSpeed)
		s.eng.SetPosition(e, float64(x), float64(y))
		s.eng.SetVelocity(e, float64(vx), float64(vy))
		s.eng.SetFlags(e, engine.FlagStayInScreen)
		s.enemies.Add(e, &EnemyState{HP: 2 + enc.System.Difficulty})
	}
}

func (s *Session) pressSpace(b Button) Action {
	enc := s.encounter
	switch b {
	case ButtonA:
		if enc.Finished() {
			return ActionLand
		}
		s.fire()
	case ButtonB:
		if !enc.Finished() {
			return ActionNone
		}
		if enc.System.HasStation {
			return ActionStation
		}
		return ActionMap
	}
	return ActionNone
}

func (s *Session) fire() {
	enc := s.encounter
	if enc == nil || !s.eng.Alive(enc.Ship) {
		return
	}
	x, y := s.eng.Position(enc.Ship)
	shot := enc.scope.spawn(render.LaserImage(), KindProjectile)
	s.eng.SetPosition(shot, x, y)
	s.eng.SetVelocity(shot, 0, laserSpeed)
	s.eng.SetFlags(shot, engine.FlagAutoDestroy)
	s.shots.Add(shot, &ProjectileState{Damage: 1 + s.player.Weapon})
}

func (s *Session) onShotEnemy(shot, enemy ecs.Entity) {
	enc := s.encounter
	if enc == nil || s.over {
		return
	}
	damage := 1
	if s.shots.Has(shot) {
		damage = s.shots.Get(shot).Damage
	}
	enc.scope.destroy(shot)

	st := s.enemies.Get(enemy)
	st.HP -= damage
	if st.HP <= 0 {
		s.destroyEnemy(enemy)
	}
	s.refreshCombatHUD()
}

// destroyEnemy removes a shot-down enemy and drops loot where it was.
func (s *Session) destroyEnemy(enemy ecs.Entity) {
	enc := s.encounter
	x, y := s.eng.Position(enemy)
	enc.scope.destroy(enemy)

	loot := enc.scope.spawn(render.LootImage(), KindLoot)
	s.eng.SetPosition(loot, x, y)
	s.eng.SetFlags(loot, engine.FlagStayInScreen)
	s.checkWave()
}

func (s *Session) onShipEnemy(ship, enemy ecs.Entity) {
	enc := s.encounter
	if enc == nil || s.over {
		return
	}
	enc.scope.destroy(enemy)

	destroyed := s.player.TakeHit()
	if s.ships.Has(ship) {
		st := s.ships.Get(ship)
		st.Shield, st.Hull = s.player.Shield, s.player.Hull
	}
	s.log.Debug("ship rammed", "shield", s.player.Shield, "hull", s.player.Hull)
	if destroyed {
		s.endGame(false)
	}
	s.checkWave()
	s.refreshCombatHUD()
}

func (s *Session) onShipLoot(_, loot ecs.Entity) {
	enc := s.encounter
	if enc == nil || s.over {
		return
	}
	enc.scope.destroy(loot)
	s.player.Earn(LootCredits)
	s.refreshCombatHUD()
}

func (s *Session) checkWave() {
	enc := s.encounter
	if enc.Status != EncounterActive || s.eng.Count(KindEnemy) > 0 {
		return
	}
	enc.Status = EncounterFinished
	s.log.Info("wave cleared", "system", enc.System.Index+1)
	s.comms.Add(tr("System %d cleared", enc.System.Index+1), MsgReward)
}

func (s *Session) refreshCombatHUD() {
	enc := s.encounter
	switch {
	case enc.Finished() && enc.System.HasStation:
		s.setHUD(tr("Victory! A:Land  B:Station"))
	case enc.Finished():
		s.setHUD(tr("Victory! A:Land  B:Map"))
	default:
		s.setHUD(tr("Hull %d | Shield %d | Cr %d", s.player.Hull, s.player.Shield, s.player.Credits))
	}
}
