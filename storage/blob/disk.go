package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"carconnect/pkg/logger"
	"carconnect/storage"
)

// DiskStore keeps uploaded images on local disk and hands out URLs under
// the /uploads/ route that the HTTP server serves statically.
type DiskStore struct {
	dir     string
	baseURL string
	log     logger.ILogger
}

func NewDiskStore(dir, baseURL string, log logger.ILogger) (storage.IBlobStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}, nil
}

func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		s.log.Error("failed to create blob file", logger.String("name", name), logger.Error(err))
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		s.log.Error("failed to write blob", logger.String("name", name), logger.Error(err))
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return s.baseURL + "/uploads/" + name, nil
}

func (s *DiskStore) Remove(ctx context.Context, name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
