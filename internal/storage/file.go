package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileGateway keeps one JSON file per record key under a data directory.
// It is the default backend: no external processes, trivially inspectable.
type FileGateway struct {
	dir string
}

// NewFileGateway creates the data directory if needed.
func NewFileGateway(dir string) (*FileGateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileGateway{dir: dir}, nil
}

func (g *FileGateway) path(key string) string {
	return filepath.Join(g.dir, key+".json")
}

func (g *FileGateway) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(g.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", key, err)
	}
	return raw, nil
}

// Put writes via a temp file and rename so a crash mid-write leaves the
// previous record intact rather than a truncated one.
func (g *FileGateway) Put(_ context.Context, key string, value []byte) error {
	tmp := g.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	if err := os.Rename(tmp, g.path(key)); err != nil {
		return fmt.Errorf("replace record %s: %w", key, err)
	}
	return nil
}

func (g *FileGateway) Close() error { return nil }
