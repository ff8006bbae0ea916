package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/zyedidia/generic/mapset"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

// SceneID names the active scene. Exactly one is active at a time.
type SceneID uint8

const (
	SceneGalaxy SceneID = iota
	SceneSpace
	ScenePlanet
	SceneStation
)

var sceneNames = [...]string{
	SceneGalaxy:  "galaxy",
	SceneSpace:   "space",
	ScenePlanet:  "planet",
	SceneStation: "station",
}

func (s SceneID) String() string {
	if int(s) < len(sceneNames) {
		return sceneNames[s]
	}
	return "unknown"
}

// Button is a discrete controller press.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonMenu
)

// direction returns the grid step for a direction button.
func (b Button) direction() (dx, dy int, ok bool) {
	switch b {
	case ButtonLeft:
		return -1, 0, true
	case ButtonRight:
		return 1, 0, true
	case ButtonUp:
		return 0, -1, true
	case ButtonDown:
		return 0, 1, true
	}
	return 0, 0, false
}

// Action is a transition request returned by a scene resolver.
// Only the session interprets it.
type Action uint8

const (
	ActionNone Action = iota
	ActionMap
	ActionLand
	ActionStation
)

func (a Action) String() string {
	switch a {
	case ActionMap:
		return "map"
	case ActionLand:
		return "land"
	case ActionStation:
		return "station"
	}
	return "none"
}

// scope tracks the sprites one scene owns so teardown can release all of them.
type scope struct {
	eng   Engine
	kinds []engine.Kind
	owned mapset.Set[ecs.Entity]
}

func newScope(eng Engine, kinds ...engine.Kind) *scope {
	return &scope{eng: eng, kinds: kinds, owned: mapset.New[ecs.Entity]()}
}

func (sc *scope) spawn(img *render.Image, kind engine.Kind) ecs.Entity {
	e := sc.eng.Create(img, kind)
	sc.owned.Put(e)
	return e
}

func (sc *scope) destroy(e ecs.Entity) {
	sc.eng.Destroy(e)
	sc.owned.Remove(e)
}

// release destroys every owned sprite plus anything left of the scope's kinds.
func (sc *scope) release() {
	if sc == nil {
		return
	}
	sc.owned.Each(func(e ecs.Entity) {
		sc.eng.Destroy(e)
	})
	sc.owned = mapset.New[ecs.Entity]()
	for _, k := range sc.kinds {
		sc.eng.DestroyAll(k)
	}
}
