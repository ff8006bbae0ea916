package tui

import "github.com/spacehole-rogue/spacegame/internal/game"

// key is one decoded keystroke.
type key struct {
	button game.Button
	quit   bool
}

// stick returns the analog direction of a direction key.
func (k key) stick() (dx, dy float64, ok bool) {
	if k.quit {
		return 0, 0, false
	}
	switch k.button {
	case game.ButtonLeft:
		return -1, 0, true
	case game.ButtonRight:
		return 1, 0, true
	case game.ButtonUp:
		return 0, -1, true
	case game.ButtonDown:
		return 0, 1, true
	}
	return 0, 0, false
}

// decodeKeys turns raw terminal input into keystrokes. Arrow keys arrive as
// ESC [ A..D; any other escape sequence is discarded. A lone ESC quits.
func decodeKeys(b []byte) []key {
	var out []key
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == 0x1b {
			if i+1 >= len(b) {
				out = append(out, key{quit: true})
				continue
			}
			if b[i+1] != '[' || i+2 >= len(b) {
				i++
				continue
			}
			switch b[i+2] {
			case 'A':
				out = append(out, key{button: game.ButtonUp})
			case 'B':
				out = append(out, key{button: game.ButtonDown})
			case 'C':
				out = append(out, key{button: game.ButtonRight})
			case 'D':
				out = append(out, key{button: game.ButtonLeft})
			}
			i += 2
			continue
		}
		if k, ok := plainKey(c); ok {
			out = append(out, k)
		}
	}
	return out
}

func plainKey(c byte) (key, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch c {
	case 'w':
		return key{button: game.ButtonUp}, true
	case 's':
		return key{button: game.ButtonDown}, true
	case 'a':
		return key{button: game.ButtonLeft}, true
	case 'd':
		return key{button: game.ButtonRight}, true
	case 'z', ' ', '\r', '\n':
		return key{button: game.ButtonA}, true
	case 'x':
		return key{button: game.ButtonB}, true
	case 'm', '\t':
		return key{button: game.ButtonMenu}, true
	case 'q', 3: // Ctrl+C
		return key{quit: true}, true
	}
	return key{}, false
}
