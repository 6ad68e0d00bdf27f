package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *TuningConfig
	Arenas []*ArenaConfig
}

// Arena returns the arena with the given id
func (c *GameConfig) Arena(id string) (*ArenaConfig, bool) {
	for _, a := range c.Arenas {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.json
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return &cfg, nil
}

// LoadArena loads an arena YAML file
func (l *Loader) LoadArena(id string) (*ArenaConfig, error) {
	cfg, err := loadYAML[ArenaConfig](l.fsys, "arenas/"+id+".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", id, err)
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	return cfg, nil
}

// LoadAll loads the tuning and every arena it lists
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	arenas := make([]*ArenaConfig, 0, len(tuning.Arenas))
	for _, id := range tuning.Arenas {
		a, err := l.LoadArena(id)
		if err != nil {
			return nil, err
		}
		arenas = append(arenas, a)
	}

	return &GameConfig{
		Tuning: tuning,
		Arenas: arenas,
	}, nil
}

func loadYAML[T any](fsys fs.FS, path string) (*T, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &out, nil
}
