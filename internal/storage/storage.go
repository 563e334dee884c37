package storage

import (
	"context"
	"io"
)

// Package storage holds the optional raw-PDF archive behind an S3-compatible
// object store. The in-memory document repository is the record of truth;
// the archive only keeps the original bytes.

// PutOptions define optional parameters for archiving objects.
// Size should be the exact number of bytes; ContentType and Metadata are optional.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Archive is an S3-compatible object store for raw uploads.
// Methods use context and streaming readers; no local disk is used.
type Archive interface {
	// Put stores an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) error
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
