package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

const (
	explorerSpeed   = 50
	hostileMaxSpeed = 30
)

// VisitStatus tracks a planet landing.
type VisitStatus uint8

const (
	VisitExplore VisitStatus = iota
	VisitDepart
)

// Visit is the state of one planet landing.
type Visit struct {
	Planet   world.Planet
	Status   VisitStatus
	Explorer ecs.Entity
	Gathered bool

	scope *scope
}

func (s *Session) setupPlanet() {
	p := s.planet
	v := &Visit{
		Planet: p,
		Status: VisitExplore,
		scope:  newScope(s.eng, KindExplorer, KindResource, KindHostile),
	}
	s.visit = v
	s.eng.SetBackground(p.Biome.Color())

	v.Explorer = v.scope.spawn(render.ExplorerImage(), KindExplorer)
	s.eng.SetFlags(v.Explorer, engine.FlagStayInScreen)
	s.eng.SetPosition(v.Explorer, spaceCenterX, spaceCenterY)
	s.eng.BindStick(v.Explorer, explorerSpeed, explorerSpeed)

	nodes := world.NewSpawnRNG(uint32(p.Size))
	for range p.ResourceNodes() {
		e := v.scope.spawn(render.ResourceImage(), KindResource)
		x := nodes.Range(spawnMinX, spawnMaxX)
		y := nodes.Range(spawnMinY, spawnMaxY)
		s.eng.SetPosition(e, float64(x), float64(y))
		s.eng.SetFlags(e, engine.FlagStayInScreen)
	}

	roamers := world.NewSpawnRNG(uint32(p.Hostility))
	for range p.HostileCount() {
		e := v.scope.spawn(render.HostileImage(), KindHostile)
		x := roamers.Range(spawnMinX, spawnMaxX)
		y := roamers.Range(spawnMinY, spawnMaxY)
		vx := roamers.Range(-hostileMaxSpeed, hostileMaxSpeed)
		vy := roamers.Range(-hostileMaxSpeed, hostileMaxSpeed)
		s.eng.SetPosition(e, float64(x), float64(y))
		s.eng.SetVelocity(e, float64(vx), float64(vy))
		s.eng.SetFlags(e, engine.FlagStayInScreen)
	}

	s.player.BurnFuel(FuelPerLanding)
	s.log.Info("landed", "planet", p.PlanetIndex, "biome", p.Biome, "fuel", s.player.Fuel)
	s.refreshPlanetHUD()
}

func (s *Session) pressPlanet(b Button) Action {
	v := s.visit
	switch b {
	case ButtonB:
		v.Status = VisitDepart
		return ActionMap
	case ButtonA:
		if s.ActiveSystem().HasStation {
			v.Status = VisitDepart
			return ActionStation
		}
	}
	return ActionNone
}

func (s *Session) onExplorerResource(_, node ecs.Entity) {
	v := s.visit
	if v == nil || s.over {
		return
	}
	v.scope.destroy(node)
	s.player.Resources++
	if s.eng.Count(KindResource) == 0 && !v.Gathered {
		v.Gathered = true
		s.comms.Add(tr("Surface survey complete: %d resources aboard", s.player.Resources), MsgReward)
	}
	s.refreshPlanetHUD()
}

// onExplorerHostile bounces the roamer back and costs one hull point.
func (s *Session) onExplorerHostile(_, hostile ecs.Entity) {
	v := s.visit
	if v == nil || s.over {
		return
	}
	vx, vy := s.eng.Velocity(hostile)
	s.eng.SetVelocity(hostile, -vx, -vy)
	if s.player.Damage(1) {
		s.endGame(false)
	}
	s.refreshPlanetHUD()
}

func (s *Session) refreshPlanetHUD() {
	if s.visit.Gathered {
		s.setHUD(tr("Resources gathered! B:Depart"))
		return
	}
	s.setHUD(tr("Res %d | Fuel %d | Hull %d", s.player.Resources, s.player.Fuel, s.player.Hull))
}
