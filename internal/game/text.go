package game

import "github.com/leonelquinteros/gotext"

// tr looks up a HUD string in the loaded locale and formats it.
// With no locale configured the English text is returned.
func tr(format string, args ...any) string {
	return gotext.Get(format, args...)
}
