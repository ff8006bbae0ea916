// Package tui plays the game in a terminal: raw keyboard input and a
// half-resolution block rendering of the sprite world.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/spacehole-rogue/spacegame/internal/engine"
	"github.com/spacehole-rogue/spacegame/internal/game"
	"github.com/spacehole-rogue/spacegame/internal/render"
)

const (
	defaultFrameRate = 30
	// Terminals report no key releases, so a direction key holds the
	// stick for stickHold after its last repeat.
	stickHold  = 150 * time.Millisecond
	splashTime = 2 * time.Second
	maxStep    = 0.1
)

// Options configures the terminal frontend. Zero values select stdin,
// stdout and the default frame rate.
type Options struct {
	In        *os.File
	Out       io.Writer
	Logger    *slog.Logger
	FrameRate int
}

type screen struct {
	eng *engine.World
	s   *game.Session
	buf *render.CellBuffer
	enc *encoder
	out io.Writer

	last        time.Time
	holdUntil   time.Time
	splash      string
	splashUntil time.Time
}

// Run drives eng and s until the player quits, input ends or ctx is done.
func Run(ctx context.Context, eng *engine.World, s *game.Session, opts Options) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = defaultFrameRate
	}

	fd := int(opts.In.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("set terminal to raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < Cols || h < Rows) {
		opts.Logger.Warn("terminal smaller than the game screen", "cols", w, "rows", h, "want_cols", Cols, "want_rows", Rows)
	}

	fmt.Fprint(opts.Out, "\x1b[2J\x1b[?25l")
	defer fmt.Fprint(opts.Out, "\x1b[0m\x1b[?25h\r\n")

	input := make(chan []byte)
	go readInput(opts.In, input)

	sc := &screen{
		eng:  eng,
		s:    s,
		buf:  render.NewCellBuffer(Cols, Rows),
		enc:  newEncoder(),
		out:  opts.Out,
		last: time.Now(),
	}
	ticker := time.NewTicker(time.Second / time.Duration(opts.FrameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-input:
			if !ok {
				return nil
			}
			if sc.handle(decodeKeys(data), time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			if err := sc.frame(now); err != nil {
				return err
			}
		}
	}
}

func readInput(r io.Reader, out chan<- []byte) {
	defer close(out)
	b := make([]byte, 64)
	for {
		n, err := r.Read(b)
		if n > 0 {
			out <- append([]byte(nil), b[:n]...)
		}
		if err != nil {
			return
		}
	}
}

// handle applies keystrokes and reports whether the player asked to quit.
func (sc *screen) handle(keys []key, now time.Time) bool {
	for _, k := range keys {
		if k.quit {
			return true
		}
		sc.s.Press(k.button)
		if dx, dy, ok := k.stick(); ok {
			sc.eng.SetStick(dx, dy)
			sc.holdUntil = now.Add(stickHold)
		}
	}
	return false
}

func (sc *screen) frame(now time.Time) error {
	if !sc.holdUntil.IsZero() && now.After(sc.holdUntil) {
		sc.eng.SetStick(0, 0)
		sc.holdUntil = time.Time{}
	}
	if over, _ := sc.eng.Outcome(); !over {
		sc.eng.Tick(min(now.Sub(sc.last).Seconds(), maxStep))
	}
	sc.last = now
	for {
		msg, ok := sc.eng.PopSplash()
		if !ok {
			break
		}
		sc.splash, sc.splashUntil = msg, now.Add(splashTime)
	}

	Compose(sc.buf, sc.eng, sc.content(now))
	_, err := io.WriteString(sc.out, sc.enc.Encode(sc.buf))
	return err
}

func (sc *screen) content(now time.Time) Frame {
	f := Frame{
		HUD:    sc.s.HUD(),
		Comms:  sc.s.Comms().Recent(commsMax),
		Footer: gotext.Get("Arrows/WASD move  Z fire/A  X back/B  M map  Q quit"),
	}
	if st := sc.s.Station(); st != nil && sc.s.Scene() == game.SceneStation {
		f.Panel = st.Lines(sc.s.Player().Credits)
	}
	if now.Before(sc.splashUntil) {
		f.Footer = sc.splash
	}
	if over, won := sc.eng.Outcome(); over {
		f.Footer = gotext.Get("GAME OVER  Q to quit")
		if won {
			f.Footer = gotext.Get("YOU WIN  Q to quit")
		}
	}
	return f
}
