// Package save persists the player's progress between sessions.
package save

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const progressItem = "progress"

// Progress is the saved player state. Health is stored as last seen,
// including a dead value; the playing scene re-triggers the death
// sequence when it loads one.
type Progress struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Health int `json:"health"`
}

// Store reads and writes progress through a platform data manager. A
// nil Store is valid and keeps everything in memory only.
type Store struct {
	manager *gdata.Manager
}

// Open creates a store backed by the OS-appropriate app data location.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	return &Store{manager: m}, nil
}

// Load returns the saved progress, or fallback when there is no usable
// save. A corrupt or unreadable save is logged and discarded rather
// than failing the launch.
func (s *Store) Load(fallback Progress) Progress {
	if s == nil || s.manager == nil {
		return fallback
	}

	data, err := s.manager.LoadItem(progressItem)
	if err != nil {
		log.Printf("Warning: could not load progress: %v", err)
		return fallback
	}
	if data == nil {
		return fallback
	}

	p, err := decodeProgress(data)
	if err != nil {
		log.Printf("Warning: discarding corrupt progress: %v", err)
		return fallback
	}
	return p
}

// Save writes the progress. Failures are logged, not fatal; losing a
// save never takes the session down with it.
func (s *Store) Save(p Progress) {
	if s == nil || s.manager == nil {
		return
	}

	data, err := encodeProgress(p)
	if err != nil {
		log.Printf("Warning: could not serialize progress: %v", err)
		return
	}

	if err := s.manager.SaveItem(progressItem, data); err != nil {
		log.Printf("Warning: could not save progress: %v", err)
	}
}

func encodeProgress(p Progress) ([]byte, error) {
	return json.Marshal(p)
}

func decodeProgress(data []byte) (Progress, error) {
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, err
	}
	return p, nil
}
