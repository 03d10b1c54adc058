package score

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Store persists the best score across runs. Implementations must treat a
// missing or unreadable record as zero; persistence failure is never a
// gameplay error.
type Store interface {
	Load() int
	Save(score int) error
}

// FileStore keeps the high score in a small JSON file, recording the score
// and when it was set.
type FileStore struct {
	path string
}

type record struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored high score, or zero when the file is missing,
// corrupt, or holds a negative value.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Score < 0 {
		return 0
	}
	return rec.Score
}

// Save writes a new high score, creating the parent directory on first use.
func (s *FileStore) Save(sc int) error {
	rec := record{
		Score: sc,
		Date:  time.Now().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore is an in-memory Store for tests and for running without a
// writable home directory.
type MemoryStore struct {
	Best    int
	SaveErr error // returned by Save when set
}

func (s *MemoryStore) Load() int { return s.Best }

func (s *MemoryStore) Save(sc int) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Best = sc
	return nil
}

// DefaultPath is where the game keeps its high-score file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".serpent", "highscore.json")
}
