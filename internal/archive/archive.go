package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/partnerdesk/partner-api/internal/config"
	"go.uber.org/zap"
)

// Archiver stores register snapshots under caller-chosen names
type Archiver interface {
	Store(ctx context.Context, name string, data io.Reader) (int64, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

// NewArchiver creates an archiver based on configuration. Local mode keeps
// snapshots on the filesystem, azure mode uploads them to Blob Storage.
func NewArchiver(cfg *config.ArchiveConfig, logger *zap.Logger) (Archiver, error) {
	switch cfg.Mode {
	case "local":
		return NewLocalArchiver(cfg.LocalBasePath)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure archive")
		}
		return NewAzureBlobArchiver(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	default:
		return nil, fmt.Errorf("unsupported archive mode: %s", cfg.Mode)
	}
}

// LocalArchiver keeps snapshots in a directory on the local filesystem
type LocalArchiver struct {
	basePath string
}

// NewLocalArchiver creates a local archiver rooted at basePath
func NewLocalArchiver(basePath string) (*LocalArchiver, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchiver{basePath: basePath}, nil
}

// Store writes a snapshot, replacing any existing snapshot with the same name
func (a *LocalArchiver) Store(ctx context.Context, name string, data io.Reader) (int64, error) {
	fullPath := filepath.Join(a.basePath, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath)
		return 0, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return size, nil
}

// Open opens a stored snapshot for reading
func (a *LocalArchiver) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(a.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot not found: %s", name)
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	return file, nil
}

// Remove deletes a stored snapshot. Removing an absent snapshot is not an
// error.
func (a *LocalArchiver) Remove(ctx context.Context, name string) error {
	if err := os.Remove(filepath.Join(a.basePath, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}
