package storage

import (
	"context"
	"fmt"

	"github.com/tompettersson/reparatur-formular/internal/config"
)

// New builds the configured storage driver.
func New(ctx context.Context, cfg config.UploadConfig) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocal(cfg.LocalDir, cfg.LocalURLPrefix), nil

	case "s3":
		if cfg.S3Bucket == "" || cfg.S3Region == "" {
			return nil, fmt.Errorf("storage: s3 driver requires bucket and region")
		}
		return NewS3(ctx, S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        cfg.S3Prefix,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
