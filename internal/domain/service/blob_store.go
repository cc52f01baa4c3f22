package service

import (
	"context"
	"io"
)

// Blob is an opened stored object.
type Blob struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// BlobStore keeps uploaded images.
type BlobStore interface {
	// Store validates mime type and size before writing anything and returns the
	// public retrieval path of the stored object. kind groups objects by purpose,
	// e.g. "services" or "products".
	Store(ctx context.Context, kind string, data []byte, mimeType, filename string) (string, error)

	// Open returns the stored object at key, the part of the retrieval path after
	// the public prefix.
	Open(ctx context.Context, key string) (*Blob, error)
}
