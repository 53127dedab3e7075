package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when no object is stored under a key.
var ErrNotFound = errors.New("object not found")

// Storage is the object store holding uploaded resumes.
type Storage interface {
	// Save stores the content under key with the declared content type.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Open returns the content stored under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the stable public URL of key.
	URL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // local root directory
	BaseURL   string // public URL prefix
	Bucket    string
	Region    string
	Endpoint  string // S3 compatible endpoint (Supabase, R2, MinIO)
	AccessKey string
	SecretKey string
}

// New creates a storage backend based on configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
