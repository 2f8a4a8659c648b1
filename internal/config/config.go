// Package config resolves the freecell configuration directory and loads
// settings from an optional config.yaml. A missing config file is not an
// error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Environment variable overrides, mainly for tests.
const (
	EnvConfigDir = "FREECELL_CONFIG_DIR"
	EnvDataDir   = "FREECELL_DATA_DIR"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir    = "data_dir"
	cfgKeyAutoMoveMS = "auto_move_ms"
	cfgKeyStatusMS   = "status_ms"
	cfgKeyConfirmMS  = "new_game_confirm_ms"
)

// Defaults for the timing knobs.
const (
	DefaultAutoMoveInterval = 200 * time.Millisecond
	DefaultStatusDuration   = 3 * time.Second
	DefaultConfirmWindow    = 2 * time.Second
)

// Config holds everything the game reads at startup.
type Config struct {
	// DataDir is where the statistics database lives.
	DataDir string
	// AutoMoveInterval is the delay between automatic foundation moves.
	AutoMoveInterval time.Duration
	// StatusDuration is how long transient status messages stay visible.
	StatusDuration time.Duration
	// ConfirmWindow is how long a new-game request waits for its
	// confirming second keypress.
	ConfirmWindow time.Duration
}

// Dir returns the platform configuration directory for freecell.
//
// Linux:   $XDG_CONFIG_HOME/freecell (fallback ~/.config/freecell)
// macOS:   ~/Library/Application Support/freecell
// Windows: %APPDATA%/freecell
//
// FREECELL_CONFIG_DIR overrides all of the above.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "freecell"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "freecell"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "freecell"), nil
}

// Load reads config.yaml from the config directory and fills in defaults.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDataDir, dir)
	v.SetDefault(cfgKeyAutoMoveMS, int(DefaultAutoMoveInterval/time.Millisecond))
	v.SetDefault(cfgKeyStatusMS, int(DefaultStatusDuration/time.Millisecond))
	v.SetDefault(cfgKeyConfirmMS, int(DefaultConfirmWindow/time.Millisecond))
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		// a missing config.yaml is fine; anything else is reported
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	dataDir := v.GetString(cfgKeyDataDir)
	if env := os.Getenv(EnvDataDir); env != "" {
		dataDir = env
	}

	return Config{
		DataDir:          dataDir,
		AutoMoveInterval: time.Duration(v.GetInt(cfgKeyAutoMoveMS)) * time.Millisecond,
		StatusDuration:   time.Duration(v.GetInt(cfgKeyStatusMS)) * time.Millisecond,
		ConfirmWindow:    time.Duration(v.GetInt(cfgKeyConfirmMS)) * time.Millisecond,
	}, nil
}
