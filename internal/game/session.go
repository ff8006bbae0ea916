package game

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

// Engine is the sprite world a session drives. *engine.World implements it.
type Engine interface {
	ECS() *ecs.World
	Create(img *render.Image, kind engine.Kind) ecs.Entity
	Destroy(e ecs.Entity)
	DestroyAll(kind engine.Kind)
	Alive(e ecs.Entity) bool
	Count(kind engine.Kind) int
	Position(e ecs.Entity) (float64, float64)
	SetPosition(e ecs.Entity, x, y float64)
	Velocity(e ecs.Entity) (float64, float64)
	SetVelocity(e ecs.Entity, vx, vy float64)
	SetFlags(e ecs.Entity, f engine.Flags)
	SetZ(e ecs.Entity, z int)
	SetBackground(c uint8)
	OnOverlap(a, b engine.Kind, fn engine.OverlapFunc)
	BindStick(e ecs.Entity, speedX, speedY float64)
	UnbindStick()
	Splash(msg string)
	GameOver(won bool)
}

// Options configures a session. Zero values select defaults.
type Options struct {
	Logger *slog.Logger
	Offers []Offer
	Now    func() time.Time
}

// Session is the scene state machine. It owns the galaxy, the player's
// progress and whichever scene is active.
type Session struct {
	eng    Engine
	log    *slog.Logger
	now    func() time.Time
	offers []Offer
	comms  *MessageLog

	seed    uint32
	systems []world.System
	cursor  int
	active  int
	planet  world.Planet
	player  PlayerProgress
	scene   SceneID
	hud     string
	over    bool

	galaxy       *scope
	cursorSprite ecs.Entity

	encounter *Encounter
	visit     *Visit
	station   *StationSession

	enemies *ecs.Map[EnemyState]
	shots   *ecs.Map[ProjectileState]
	ships   *ecs.Map[ShipState]
}

// NewSession wires a session to eng and registers every overlap handler.
// Call Start to generate the first galaxy.
func NewSession(eng Engine, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Offers == nil {
		opts.Offers = DefaultOffers()
	}
	s := &Session{
		eng:     eng,
		log:     opts.Logger.With("component", "session"),
		now:     opts.Now,
		offers:  opts.Offers,
		comms:   NewMessageLog(50, 40),
		enemies: ecs.NewMap[EnemyState](eng.ECS()),
		shots:   ecs.NewMap[ProjectileState](eng.ECS()),
		ships:   ecs.NewMap[ShipState](eng.ECS()),
	}

	eng.OnOverlap(KindShip, KindEnemy, s.onShipEnemy)
	eng.OnOverlap(KindProjectile, KindEnemy, s.onShotEnemy)
	eng.OnOverlap(KindShip, KindLoot, s.onShipLoot)
	eng.OnOverlap(KindExplorer, KindResource, s.onExplorerResource)
	eng.OnOverlap(KindExplorer, KindHostile, s.onExplorerHostile)
	return s
}

// NewSeed derives a galaxy seed from the wall clock.
func NewSeed(now time.Time) uint32 {
	base := now.UnixMilli()
	if base == 0 {
		base = 1234567
	}
	return uint32(base & 0x7fffffff)
}

// Start builds a fresh galaxy from seed, resets progress and shows the map.
func (s *Session) Start(seed uint32) {
	s.seed = seed
	s.systems = world.BuildGalaxy(seed)
	s.cursor = 0
	s.active = 0
	s.player = NewPlayerProgress()
	s.log.Info("galaxy generated", "seed", seed, "systems", len(s.systems))
	s.comms.Add(tr("New galaxy charted (seed %d)", seed), MsgInfo)
	s.enter(SceneGalaxy)
}

// Press handles one controller press.
func (s *Session) Press(b Button) {
	if s.over {
		return
	}
	if s.scene == SceneGalaxy {
		s.pressGalaxy(b)
		return
	}

	var action Action
	switch {
	case b == ButtonMenu:
		action = ActionMap
	case s.scene == SceneSpace:
		action = s.pressSpace(b)
	case s.scene == ScenePlanet:
		action = s.pressPlanet(b)
	case s.scene == SceneStation:
		action = s.pressStation(b)
	}
	s.apply(action)
}

func (s *Session) apply(a Action) {
	if a == ActionNone {
		return
	}
	sys := s.ActiveSystem()
	switch a {
	case ActionMap:
		s.enter(SceneGalaxy)

	case ActionLand:
		if s.scene != SceneSpace || !s.encounter.Finished() {
			s.log.Debug("land ignored", "scene", s.scene)
			return
		}
		if len(sys.Planets) == 0 {
			s.eng.Splash(tr("No planets here"))
			s.enter(SceneGalaxy)
			return
		}
		s.planet = sys.Planets[0]
		s.enter(ScenePlanet)

	case ActionStation:
		allowed := (s.scene == SceneSpace && s.encounter.Finished()) ||
			(s.scene == ScenePlanet && s.visit.Status == VisitDepart)
		if !sys.HasStation || !allowed {
			s.log.Debug("station ignored", "scene", s.scene, "has_station", sys.HasStation)
			return
		}
		s.enter(SceneStation)
	}
}

// enter runs teardown of the current scene, switches the id, then runs setup.
func (s *Session) enter(next SceneID) {
	s.teardown(s.scene)
	prev := s.scene
	s.scene = next
	s.setup(next)
	s.log.Debug("scene entered", "from", prev, "to", next)
}

func (s *Session) teardown(id SceneID) {
	switch id {
	case SceneGalaxy:
		s.galaxy.release()
		s.galaxy = nil
	case SceneSpace:
		if s.encounter != nil {
			s.encounter.scope.release()
			s.encounter = nil
		}
	case ScenePlanet:
		if s.visit != nil {
			s.visit.scope.release()
			s.visit = nil
		}
	case SceneStation:
		if s.station != nil {
			s.station.scope.release()
			s.station = nil
		}
	}
	s.eng.UnbindStick()
	s.eng.DestroyAll(KindProjectile)
}

func (s *Session) setup(id SceneID) {
	switch id {
	case SceneGalaxy:
		s.setupGalaxy()
	case SceneSpace:
		s.setupSpace()
	case ScenePlanet:
		s.setupPlanet()
	case SceneStation:
		s.setupStation()
	}
}

func (s *Session) setHUD(text string) { s.hud = text }

// endGame raises the game-over signal at most once per session.
func (s *Session) endGame(won bool) {
	if s.over {
		return
	}
	s.over = true
	s.log.Info("game over", "won", won, "scene", s.scene, "credits", s.player.Credits)
	s.comms.Add(tr("Hull breached. Game over."), MsgCritical)
	s.eng.GameOver(won)
}

// Scene returns the active scene.
func (s *Session) Scene() SceneID { return s.scene }

// Seed returns the root seed of the current galaxy.
func (s *Session) Seed() uint32 { return s.seed }

// Player returns a copy of the player's progress.
func (s *Session) Player() PlayerProgress { return s.player }

// HUD returns the current status line.
func (s *Session) HUD() string { return s.hud }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Comms returns the event log.
func (s *Session) Comms() *MessageLog { return s.comms }

// Systems returns a copy of the galaxy.
func (s *Session) Systems() []world.System { return slices.Clone(s.systems) }

// Cursor returns the selected system index on the galaxy map.
func (s *Session) Cursor() int { return s.cursor }

// ActiveSystem returns the system the player last entered.
func (s *Session) ActiveSystem() world.System {
	if s.active < 0 || s.active >= len(s.systems) {
		return world.System{}
	}
	return s.systems[s.active]
}

// Encounter returns the combat state, or nil outside the space scene.
func (s *Session) Encounter() *Encounter { return s.encounter }

// Visit returns the planet state, or nil outside the planet scene.
func (s *Session) Visit() *Visit { return s.visit }

// Station returns the station state, or nil outside the station scene.
func (s *Session) Station() *StationSession { return s.station }
