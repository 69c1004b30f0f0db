// Package records persists the best campaign time as a single two-decimal
// number in a text file.
package records

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultPath is the record file used when none is configured
const DefaultPath = "best_time.txt"

// NoRecord is the best time reported when nothing has been saved yet.
// It compares greater than any real run.
var NoRecord = math.Inf(1)

// Store loads and saves the best total time in seconds
type Store interface {
	Load() float64
	Save(seconds float64) error
}

// FileStore keeps the record in a plain text file
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by path, or DefaultPath if empty
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

// Load returns the saved best time. A missing file returns NoRecord
// silently; an unreadable or malformed one logs a warning first.
func (s *FileStore) Load() float64 {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", s.Path).Warn("Could not read best time")
		}
		return NoRecord
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || math.IsNaN(seconds) || seconds < 0 {
		log.WithField("path", s.Path).WithField("content", string(data)).Warn("Ignoring corrupt best time record")
		return NoRecord
	}
	return seconds
}

// Save overwrites the record with seconds formatted to two decimals
func (s *FileStore) Save(seconds float64) error {
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return fmt.Errorf("save best time: invalid value %v", seconds)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save best time: %w", err)
		}
	}

	if err := os.WriteFile(s.Path, []byte(Format(seconds)), 0o644); err != nil {
		return fmt.Errorf("save best time: %w", err)
	}
	return nil
}

// Format renders seconds the way they are stored
func Format(seconds float64) string {
	return fmt.Sprintf("%.2f", seconds)
}

// Round returns seconds at the precision they are stored with, so a fresh
// total compares equal to the same value read back from the file.
func Round(seconds float64) float64 {
	v, err := strconv.ParseFloat(Format(seconds), 64)
	if err != nil {
		return seconds
	}
	return v
}

// Nop is a store for modes without persistence
type Nop struct{}

// Load always reports NoRecord
func (Nop) Load() float64 { return NoRecord }

// Save discards the value
func (Nop) Save(float64) error { return nil }
