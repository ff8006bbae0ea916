package config

import (
	"fmt"
	"os"
	"strconv"
)

// applyEnv overrides file settings with any variables that are set.
func (c *Config) applyEnv() error {
	if v := os.Getenv("SPACEGAME_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("SPACEGAME_SEED: %w", err)
		}
		c.Game.Seed = uint32(seed)
	}
	if v := os.Getenv("SPACEGAME_SCALE"); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SPACEGAME_SCALE: %w", err)
		}
		c.Display.Scale = scale
	}
	setString(&c.Display.Frontend, "SPACEGAME_FRONTEND")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")
	setString(&c.Logging.File, "LOG_FILE")
	setString(&c.Locale.Dir, "SPACEGAME_LOCALE_DIR")
	setString(&c.Locale.Lang, "SPACEGAME_LANG")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
