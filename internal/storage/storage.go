// Package storage persists shoe photos the customer attaches during intake.
// Keys are opaque; the returned URL is what gets stored on the order item.
package storage

import (
	"context"
	"io"
)

// MaxPhotoSize caps a single upload at 10 MB.
const MaxPhotoSize = 10 << 20

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

// AllowedImage reports whether the content type is one we accept for shoe
// photos.
func AllowedImage(contentType string) bool {
	switch contentType {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
		return true
	}
	return false
}
