// Package storage persists player progress between runs. Failures are
// logged and never stop the game.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is what survives between runs
type Progress struct {
	BestLevel int `json:"bestLevel"` // highest level index reached
	BestScore int `json:"bestScore"` // most coins in one run
	Wins      int `json:"wins"`
	Coins     int `json:"coins"` // lifetime total
}

// Items is the key/value backend; *gdata.Manager satisfies it
type Items interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Progress
type Store struct {
	items  Items
	logger *log.Logger
}

// Open opens the platform save location for appName
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewStore(m, logger), nil
}

// NewStore wraps an existing backend
func NewStore(items Items, logger *log.Logger) *Store {
	return &Store{items: items, logger: logger}
}

// Load returns the saved progress. Missing or unreadable data yields the
// zero value.
func (s *Store) Load() Progress {
	var p Progress
	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		s.logger.Warn("could not load progress", "error", err)
		return p
	}
	if len(data) == 0 {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("could not parse saved progress", "error", err)
		return Progress{}
	}
	return p
}

// Save writes p
func (s *Store) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.items.SaveItem(progressKey, data); err != nil {
		s.logger.Warn("could not save progress", "error", err)
		return err
	}
	return nil
}

// RecordLevel notes that level index was reached
func (s *Store) RecordLevel(index int) {
	s.update(func(p *Progress) bool {
		if index <= p.BestLevel {
			return false
		}
		p.BestLevel = index
		return true
	})
}

// RecordRun folds the end of a run into the totals
func (s *Store) RecordRun(score int, won bool) {
	s.update(func(p *Progress) bool {
		p.Coins += score
		if score > p.BestScore {
			p.BestScore = score
		}
		if won {
			p.Wins++
		}
		return true
	})
}

func (s *Store) update(fn func(*Progress) bool) {
	p := s.Load()
	if fn(&p) {
		_ = s.Save(p)
	}
}
