package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/render/ebview"
)

const splashFrames = 120

var buttonKeys = []struct {
	button game.Button
	keys   []ebiten.Key
}{
	{game.ButtonLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{game.ButtonRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{game.ButtonUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{game.ButtonDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{game.ButtonA, []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace, ebiten.KeyEnter}},
	{game.ButtonB, []ebiten.Key{ebiten.KeyX, ebiten.KeyBackspace}},
	{game.ButtonMenu, []ebiten.Key{ebiten.KeyM, ebiten.KeyTab}},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in the session.
type Game struct {
	eng      *engine.World
	session  *game.Session
	renderer *ebview.Renderer

	splash     string
	splashLeft int
}

func NewGame(eng *engine.World, s *game.Session, scale int) *Game {
	return &Game{
		eng:      eng,
		session:  s,
		renderer: ebview.NewRenderer(eng.Width, eng.Height, scale),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, bk := range buttonKeys {
		for _, k := range bk.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.session.Press(bk.button)
				break
			}
		}
	}
	g.eng.SetStick(axis(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD),
		axis(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyArrowDown, ebiten.KeyS))

	if over, _ := g.eng.Outcome(); !over {
		g.eng.Tick(1 / float64(ebiten.TPS()))
	}

	if g.splashLeft > 0 {
		g.splashLeft--
	}
	if msg, ok := g.eng.PopSplash(); ok {
		g.splash, g.splashLeft = msg, splashFrames
	}
	return nil
}

// axis returns -1, 0 or 1 from two pairs of held keys.
func axis(negA, negB, posA, posB ebiten.Key) float64 {
	var v float64
	if ebiten.IsKeyPressed(negA) || ebiten.IsKeyPressed(negB) {
		v--
	}
	if ebiten.IsKeyPressed(posA) || ebiten.IsKeyPressed(posB) {
		v++
	}
	return v
}

func (g *Game) footer() []string {
	var lines []string
	if msg, ok := g.session.Comms().Last(); ok {
		lines = append(lines, msg.Text)
	}
	if g.splashLeft > 0 {
		lines = append(lines, g.splash)
	}
	if over, won := g.eng.Outcome(); over {
		if won {
			lines = append(lines, gotext.Get("YOU WIN  ESC to quit"))
		} else {
			lines = append(lines, gotext.Get("GAME OVER  ESC to quit"))
		}
	}
	return lines
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.eng, g.session.HUD(), g.footer())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size()
}
