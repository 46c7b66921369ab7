package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"

	"github.com/BruksfildServices01/vetclinic-api/internal/config"
)

// Sink stores uploaded static files and returns the public URL of each.
type Sink interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
}

// New returns the S3 sink when a bucket is configured, else the local one.
func New(cfg *config.Config) Sink {
	if cfg.S3Enabled() {
		return NewS3Sink(cfg)
	}
	return NewLocalSink(cfg.StaticDir, cfg.StaticURLPrefix)
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
