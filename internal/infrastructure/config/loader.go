package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads tuning and level data from JSON files using the fs.FS
// interface, so callers can point it at an embedded filesystem or an
// on-disk data directory.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading from a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadTuning loads tuning.json.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	var tn Tuning
	if err := json.Unmarshal(data, &tn); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return &tn, nil
}

// LoadLevelData loads platforms.json, enemies.json and coins.json. Any
// missing or malformed file is an error: the game cannot run without
// level geometry.
func (l *Loader) LoadLevelData() (*LevelData, error) {
	var data LevelData

	if err := l.loadJSON("platforms.json", &data.Platforms); err != nil {
		return nil, err
	}
	if err := l.loadJSON("enemies.json", &data.Enemies); err != nil {
		return nil, err
	}
	if err := l.loadJSON("coins.json", &data.Coins); err != nil {
		return nil, err
	}

	return &data, nil
}

func (l *Loader) loadJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
