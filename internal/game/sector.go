package game

import (
	"fmt"
	"strings"

	"github.com/spacehole-rogue/spacegame/internal/render"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

const cursorZ = 10

func (s *Session) setupGalaxy() {
	s.eng.SetBackground(render.ColorWhite)
	s.galaxy = newScope(s.eng, KindStar, KindCursor)

	for _, sys := range s.systems {
		star := s.galaxy.spawn(render.StarImage(sys.Star.Color()), KindStar)
		x, y := world.SystemCoordinates(sys.Index)
		s.eng.SetPosition(star, float64(x), float64(y))
	}
	s.cursorSprite = s.galaxy.spawn(render.CursorImage(), KindCursor)
	s.eng.SetZ(s.cursorSprite, cursorZ)
	s.placeCursor()
	s.refreshGalaxyInfo()
}

func (s *Session) pressGalaxy(b Button) {
	if dx, dy, ok := b.direction(); ok {
		s.cursor = world.MoveCursor(s.cursor, dx, dy)
		s.placeCursor()
		s.refreshGalaxyInfo()
		return
	}
	switch b {
	case ButtonA:
		s.active = world.ClampCursor(s.cursor)
		s.log.Info("system entered", "system", s.active+1, "difficulty", s.systems[s.active].Difficulty)
		s.enter(SceneSpace)
	case ButtonB:
		s.Start(NewSeed(s.now()))
	}
}

func (s *Session) placeCursor() {
	s.cursor = world.ClampCursor(s.cursor)
	x, y := world.SystemCoordinates(s.cursor)
	s.eng.SetPosition(s.cursorSprite, float64(x), float64(y))
}

func (s *Session) refreshGalaxyInfo() {
	if s.cursor >= len(s.systems) {
		return
	}
	s.setHUD(SystemLabel(s.systems[s.cursor]))
}

// SystemLabel is the galaxy map status line for one system.
func SystemLabel(sys world.System) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sys %d %s | diff %d", sys.Index+1, sys.Star, sys.Difficulty)
	if sys.HasStation {
		b.WriteString(" | station")
	}
	fmt.Fprintf(&b, " | planets %d", len(sys.Planets))
	return b.String()
}
