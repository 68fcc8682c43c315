package main

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/younwookim/spaceboy/internal/infrastructure/config"
	"github.com/younwookim/spaceboy/internal/infrastructure/level"
)

// gameData is everything read from the config directory
type gameData struct {
	config *config.GameConfig
	levels []*level.Data
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("built-in configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadGame reads configs and every level file. first is the 1-based
// level to start from; earlier levels are dropped.
func loadGame(loader *config.Loader, first int, logger *log.Logger) (*gameData, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	refs := cfg.Levels.Levels
	if first < 1 || first > len(refs) {
		return nil, fmt.Errorf("level %d out of range 1..%d", first, len(refs))
	}
	refs = refs[first-1:]
	cfg.Levels.Levels = refs

	levels := make([]*level.Data, 0, len(refs))
	for _, ref := range refs {
		data, err := loader.LoadLevel(ref)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", ref.File, err)
		}
		logger.Debug("level loaded", "title", ref.Title, "file", ref.File, "size", fmt.Sprintf("%dx%d", data.Width, data.Height), "objects", len(data.Objects))
		levels = append(levels, data)
	}

	return &gameData{config: cfg, levels: levels}, nil
}
