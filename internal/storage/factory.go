package storage

import (
	"fmt"
	"log/slog"
)

// Backend names a gateway implementation.
type Backend string

const (
	FileBackend   Backend = "file"
	SQLiteBackend Backend = "sqlite"
)

// IsValid returns true for a known backend name.
func (b Backend) IsValid() bool {
	switch b {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Options selects and configures a gateway backend.
type Options struct {
	Backend      Backend
	DataDir      string // file backend
	SQLiteDBPath string // sqlite backend
}

// NewGateway builds the configured gateway.
func NewGateway(opts Options) (Gateway, error) {
	switch opts.Backend {
	case FileBackend:
		g, err := NewFileGateway(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file gateway: %w", err)
		}
		slog.Info("Initialized file storage", "data_dir", opts.DataDir)
		return g, nil
	case SQLiteBackend:
		g, err := NewSQLiteGateway(opts.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite gateway: %w", err)
		}
		slog.Info("Initialized sqlite storage", "db_path", opts.SQLiteDBPath)
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", opts.Backend)
	}
}
