package storage

import (
	"context"
	"io"
)

// Storage stores objects by path.
type Storage interface {
	// Upload writes the content of reader to path, replacing any object there.
	Upload(ctx context.Context, path string, reader io.Reader) error

	// Download opens the object at path. The caller closes it.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object at path. A missing object is not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether an object exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns an address for the object at path.
	URL(ctx context.Context, path string) (string, error)
}
