package storage

import (
	"context"
	"fmt"
	"os"
)

// FromEnv selects the storage backend from STORAGE_DRIVER (local by default).
func FromEnv(ctx context.Context) (Storage, string, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := envOr("UPLOAD_DIR", "./data/uploads")
		urlPrefix := envOr("UPLOAD_URL_PREFIX", "/uploads")
		return NewLocal(baseDir, urlPrefix), driver, nil

	case "s3":
		cfg := S3Config{
			Region:        os.Getenv("S3_REGION"),
			Bucket:        os.Getenv("S3_BUCKET"),
			Prefix:        envOr("S3_PREFIX", "uploads"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		}
		if cfg.Region == "" || cfg.Bucket == "" || cfg.PublicBaseURL == "" {
			return nil, "", fmt.Errorf("s3 storage requires S3_REGION, S3_BUCKET and S3_PUBLIC_BASE_URL")
		}
		s, err := NewS3(ctx, cfg)
		if err != nil {
			return nil, "", err
		}
		return s, driver, nil

	default:
		return nil, "", fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
