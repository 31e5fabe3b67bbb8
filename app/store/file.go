package store

import (
	"os"
	"path/filepath"
)

// FileBackend keeps one JSON file per key under a data directory. It is the
// default backend and needs no external service.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed and returns a backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Load(key string) ([]byte, bool, error) {
	value, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (b *FileBackend) Save(key string, value []byte) error {
	return os.WriteFile(b.path(key), value, 0o644)
}

func (b *FileBackend) Close() error {
	return nil
}
