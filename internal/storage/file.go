package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a single decimal integer in a plain
// text file, so it stays hand-editable and survives without a database.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path. The file is not
// touched until the first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

// Load reads the stored high score. A missing file is not an error and
// yields zero, matching a first launch.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score file: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score file %s: %w", f.path, err)
	}
	return score, nil
}

// Save overwrites the file with the new high score, creating parent
// directories on first write.
func (f *FileStore) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for high score file: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score file: %w", err)
	}
	return nil
}
