// Package savegame reads and writes FreeCell save files. A save is a single
// JSON document holding the seed, the board, and the full undo history, so
// a loaded game is indistinguishable from one that was never interrupted.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/FBemf/freecell/internal/engine"
)

// DefaultPrefix is the filename prefix for numbered save files.
const DefaultPrefix = "freecell_save."

// FormatVersion is the save file format version this build writes.
const FormatVersion = 1

// State is everything needed to resume a game.
type State struct {
	Version int             `json:"version"`
	Seed    uint64          `json:"seed"`
	Game    engine.Game     `json:"game"`
	History *engine.History `json:"history"`
}

// Save writes the state to the first free numbered file (prefix0, prefix1,
// ...) in dir and returns the path written. An existing file is never
// overwritten.
func Save(dir, prefix string, s State) (string, error) {
	s.Version = FormatVersion
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding save: %w", err)
	}
	for n := 0; ; n++ {
		path := filepath.Join(dir, prefix+strconv.Itoa(n))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating save file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		return path, nil
	}
}

// Load reads a save file written by Save.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("reading save file: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("parsing save file %s: %w", path, err)
	}
	if s.Version != FormatVersion {
		return State{}, fmt.Errorf("save file %s has unsupported version %d", path, s.Version)
	}
	if s.History == nil {
		s.History = engine.NewHistory()
	}
	return s, nil
}
