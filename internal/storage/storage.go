// Package storage persists uploaded product images, locally in dev and on
// S3 in production.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// 5 Mo max par image produit.
const MaxImageBytes = 5 << 20

var (
	ErrImageTooLarge = errors.New("storage: image exceeds maximum size")
	ErrBadImageType  = errors.New("storage: unsupported image type")
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// CheckImage rejects uploads that are too big or not an image we serve.
func CheckImage(in PutInput) error {
	if in.Size > MaxImageBytes {
		return ErrImageTooLarge
	}
	if !imageExts[imageExt(in.Filename)] {
		return ErrBadImageType
	}
	return nil
}

func imageExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
