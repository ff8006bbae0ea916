package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/spacehole-rogue/spacegame/internal/config"
	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/logging"
	"github.com/spacehole-rogue/spacegame/internal/tui"
	"github.com/spacehole-rogue/spacegame/internal/world"
)

// defaultTerminalLog keeps log output off the terminal screen.
const defaultTerminalLog = "spacegame.log"

func main() {
	configPath := flag.String("config", "spacegame.yaml", "path to the YAML config file")
	seed := flag.Uint("seed", 0, "galaxy seed; 0 derives one from the clock")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	flag.Parse()

	cfg, err := config.Init(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = uint32(*seed)
	}
	if *useTUI {
		cfg.Display.Frontend = config.FrontendTerminal
	}
	if cfg.Display.Frontend == config.FrontendTerminal && cfg.Logging.File == "" {
		cfg.Logging.File = defaultTerminalLog
	}

	logger, closeLog, err := logging.Init(cfg.Logging)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	if cfg.Locale.Dir != "" {
		gotext.Configure(cfg.Locale.Dir, cfg.Locale.Lang, cfg.Locale.Domain)
	}

	eng := engine.NewWorld(world.ScreenWidth, world.ScreenHeight)
	session := game.NewSession(eng, game.Options{Logger: logger})
	if cfg.Game.Seed != 0 {
		session.Start(cfg.Game.Seed)
	} else {
		session.Start(game.NewSeed(time.Now()))
	}

	if err := run(cfg, logger, eng, session); err != nil {
		logger.Error("game stopped", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, eng *engine.World, s *game.Session) error {
	if cfg.Display.Frontend == config.FrontendTerminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tui.Run(ctx, eng, s, tui.Options{Logger: logger})
	}

	g := NewGame(eng, s, cfg.Display.Scale)
	w, h := g.renderer.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
