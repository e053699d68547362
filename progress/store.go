package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// record is the on-disk format.
type record struct {
	Level int `json:"level"`
}

// Store remembers the highest level index ever reached. Reads never fail:
// a missing or unreadable file means no progress. When a write fails the
// store keeps working in memory for the rest of the session.
type Store struct {
	path     string
	level    int
	dirty    bool
	degraded bool
}

// Open reads path. An empty path gives a memory-only store.
func Open(path string) *Store {
	s := &Store{path: path}
	if path == "" {
		s.degraded = true
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("progress: read %s: %v; starting from level 0", path, err)
		}
		return s
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("progress: corrupt %s: %v; starting from level 0", path, err)
		return s
	}
	if r.Level < 0 {
		log.Printf("progress: negative level %d in %s; starting from level 0", r.Level, path)
		return s
	}
	s.level = r.Level
	return s
}

// Level returns the highest level index reached.
func (s *Store) Level() int {
	if s == nil {
		return 0
	}
	return s.level
}

// Degraded reports whether progress is only kept in memory.
func (s *Store) Degraded() bool {
	return s == nil || s.degraded
}

// Record raises the stored level to level and writes it through. Lower
// values are ignored. A write failure is returned once, after which the
// store stops touching the disk.
func (s *Store) Record(level int) error {
	if s == nil || level <= s.level {
		return nil
	}
	s.level = level
	s.dirty = true
	return s.Flush()
}

// Flush writes pending progress.
func (s *Store) Flush() error {
	if s == nil || !s.dirty || s.degraded {
		return nil
	}

	data, err := json.Marshal(record{Level: s.level})
	if err != nil {
		return fmt.Errorf("progress: marshal: %w", err)
	}
	if err := s.write(data); err != nil {
		s.degraded = true
		log.Printf("progress: save error: %v; keeping progress in memory", err)
		return fmt.Errorf("progress: save %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

func (s *Store) write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
