package service

import (
	"context"
	"io"

	"adresses/internal/errors"
)

// ErrObjectNotFound is returned when a key has no stored object.
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored blob opened for reading.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStore is the binary file store holding address photos and avatars.
type ObjectStore interface {
	// Put uploads data under key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// URL returns the durable retrieval URL for key.
	URL(key string) string

	// List returns every key under prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error

	// Open streams the object at key. Returns ErrObjectNotFound when absent.
	Open(ctx context.Context, key string) (*Object, error)
}
