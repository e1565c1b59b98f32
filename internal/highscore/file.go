package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	appDir   = "go1010"
	fileName = "highscore.json"
)

type record struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps the best score in a small JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns <user config dir>/go1010/highscore.json, falling back
// to the working directory when no config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, appDir, fileName)
}

func (f *FileStore) Path() string {
	return f.path
}

// Get returns 0 when the file does not exist yet.
func (f *FileStore) Get() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) SetIfGreater(score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	best, err := f.load()
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}
	if err := f.save(score); err != nil {
		return false, err
	}
	return true, nil
}

func (f *FileStore) load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode high score %s: %w", f.path, err)
	}
	if rec.HighScore < 0 {
		return 0, nil
	}
	return rec.HighScore, nil
}

// save writes through a temp file so a crash never leaves a torn file.
func (f *FileStore) save(score int) error {
	data, err := json.MarshalIndent(record{HighScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, fileName+".*")
	if err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}
