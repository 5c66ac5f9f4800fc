package storage

import (
	"context"
	"io"

	"github.com/kbukum/tablerw/resilience"
)

type retrying struct {
	Storage
	policy resilience.Policy
}

// WithRetry wraps s so that every operation is retried under p. Uploads are
// retried only when the reader is an io.Seeker, rewinding it before each
// attempt.
func WithRetry(s Storage, p resilience.Policy) Storage {
	return &retrying{Storage: s, policy: p}
}

func (r *retrying) Upload(ctx context.Context, path string, reader io.Reader) error {
	seeker, ok := reader.(io.Seeker)
	if !ok {
		return r.Storage.Upload(ctx, path, reader)
	}
	return resilience.Do(ctx, r.policy, "storage.upload", func(ctx context.Context) error {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return err
		}
		return r.Storage.Upload(ctx, path, reader)
	})
}

func (r *retrying) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	err := resilience.Do(ctx, r.policy, "storage.download", func(ctx context.Context) error {
		var err error
		rc, err = r.Storage.Download(ctx, path)
		return err
	})
	return rc, err
}

func (r *retrying) Delete(ctx context.Context, path string) error {
	return resilience.Do(ctx, r.policy, "storage.delete", func(ctx context.Context) error {
		return r.Storage.Delete(ctx, path)
	})
}

func (r *retrying) Exists(ctx context.Context, path string) (bool, error) {
	var ok bool
	err := resilience.Do(ctx, r.policy, "storage.exists", func(ctx context.Context) error {
		var err error
		ok, err = r.Storage.Exists(ctx, path)
		return err
	})
	return ok, err
}
