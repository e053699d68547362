package progress

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		want    int
	}{
		{name: "missing file", want: 0},
		{name: "valid", content: `{"level": 4}`, write: true, want: 4},
		{name: "corrupt", content: `{"level": `, write: true, want: 0},
		{name: "wrong type", content: `{"level": "three"}`, write: true, want: 0},
		{name: "negative", content: `{"level": -2}`, write: true, want: 0},
		{name: "extra fields", content: `{"level": 2, "name": "x"}`, write: true, want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "progress.json")
			if tc.write {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatalf("write fixture: %v", err)
				}
			}
			if got := Open(path).Level(); got != tc.want {
				t.Fatalf("level = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecordRoundTripAndMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	s := Open(path)

	if err := s.Record(3); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record(1); err != nil {
		t.Fatalf("record lower: %v", err)
	}
	if s.Level() != 3 {
		t.Fatalf("level = %d, want 3", s.Level())
	}

	if got := Open(path).Level(); got != 3 {
		t.Fatalf("reopened level = %d, want 3", got)
	}
}

func TestRecordDegradesToMemory(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be makes every write
	// fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	s := Open(filepath.Join(blocker, "progress.json"))

	if err := s.Record(2); err == nil {
		t.Fatalf("expected save error")
	}
	if !s.Degraded() {
		t.Fatalf("store should be degraded")
	}
	if s.Level() != 2 {
		t.Fatalf("level = %d, want 2 kept in memory", s.Level())
	}
	if err := s.Record(5); err != nil {
		t.Fatalf("degraded record should not error: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("degraded flush should not error: %v", err)
	}
	if s.Level() != 5 {
		t.Fatalf("level = %d, want 5", s.Level())
	}
}

func TestMemoryOnly(t *testing.T) {
	s := Open("")
	if err := s.Record(7); err != nil {
		t.Fatalf("record: %v", err)
	}
	if s.Level() != 7 || !s.Degraded() {
		t.Fatalf("level = %d degraded = %v", s.Level(), s.Degraded())
	}
}
