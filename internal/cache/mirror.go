// Package cache holds the client's durable local mirror of leaderboard
// records. The mirror is a single JSON array under a fixed, versioned
// file name, replaced wholesale on every write; the version lives in the
// name so a format change is a new file, not a migration.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mfield/memorymatch/internal/model"
)

// FileName is the versioned storage key for the local mirror
const FileName = "memorymatch-leaderboard-v1.json"

// Mirror reads and writes the local record set
type Mirror struct {
	path string
}

// NewMirror creates a mirror stored at the given file path
func NewMirror(path string) *Mirror {
	return &Mirror{path: path}
}

// NewMirrorInDir creates a mirror under dir using the versioned file name
func NewMirrorInDir(dir string) *Mirror {
	return &Mirror{path: filepath.Join(dir, FileName)}
}

// Path returns the mirror's file path
func (m *Mirror) Path() string {
	return m.path
}

// Read returns the stored record set. A missing or malformed file reads
// as the empty set; the mirror is best-effort, never an error source.
func (m *Mirror) Read() ([]model.LeaderboardRecord, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return []model.LeaderboardRecord{}, nil
	}

	var records []model.LeaderboardRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []model.LeaderboardRecord{}, nil
	}
	if records == nil {
		records = []model.LeaderboardRecord{}
	}
	return records, nil
}

// Write replaces the stored record set
func (m *Mirror) Write(records []model.LeaderboardRecord) error {
	if records == nil {
		records = []model.LeaderboardRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0600)
}
