package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/spaceboy/internal/infrastructure/level"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Levels   *LevelsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
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

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.decode("physics.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.decode("entities.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("entities.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.decode("levels.yaml", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("levels.yaml: no levels: %w", ErrInvalid)
	}
	return &cfg, nil
}

// LoadLevel reads the level file a LevelRef points at
func (l *Loader) LoadLevel(ref LevelRef) (*level.Data, error) {
	return level.Load(l.fsys, ref.File, ref.Width, ref.Height)
}

// LoadAll loads all base configurations (physics, entities, levels)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
		Levels:   levels,
	}, nil
}

// Validate checks the values the simulation divides by or depends on
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Simulation.Step <= 0:
		return fmt.Errorf("simulation.step must be positive: %w", ErrInvalid)
	case c.Simulation.MaxStepsPerFrame < 0:
		return fmt.Errorf("simulation.maxStepsPerFrame must not be negative: %w", ErrInvalid)
	case c.Physics.TileSize <= 0:
		return fmt.Errorf("physics.tileSize must be positive: %w", ErrInvalid)
	case c.Movement.MaxSpeedX <= 0:
		return fmt.Errorf("movement.maxSpeedX must be positive: %w", ErrInvalid)
	case c.Display.TilePixels <= 0:
		return fmt.Errorf("display.tilePixels must be positive: %w", ErrInvalid)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sampleRate must be positive: %w", ErrInvalid)
	}
	return nil
}

// Validate checks that every kind has a usable box
func (c *EntitiesConfig) Validate() error {
	bodies := map[string]BodyConfig{
		"player":      c.Player,
		"enemy":       c.Enemy.BodyConfig,
		"goal":        c.Goal,
		"collectible": c.Collectible,
	}
	for name, b := range bodies {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%s needs a positive width and height: %w", name, ErrInvalid)
		}
	}
	return nil
}
