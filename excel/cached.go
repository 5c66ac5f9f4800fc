package excel

import (
	"context"

	"github.com/kbukum/tablerw/cache"
	"github.com/kbukum/tablerw/read"
	"github.com/kbukum/tablerw/write"
)

// WriteFrom writes records into s with the layout cached under key, building
// it with configure on first use.
func WriteFrom[E any](c *cache.Cache, s *Sheet, records []E, key int, configure func(*write.Builder[*Sheet, E, struct{}])) error {
	return WriteFromWithData(c, s, records, key, configure)
}

// WriteFromWithData is WriteFrom for layouts that compute per-invocation data
// with InitData.
func WriteFromWithData[E, D any](c *cache.Cache, s *Sheet, records []E, key int, configure func(*write.Builder[*Sheet, E, D])) error {
	proc, err := write.Cached(c, Cells{}, key, configure)
	if err != nil {
		return err
	}
	return proc.Slice(s, records)
}

// ReadTo reads up to count records from s with the layout cached under key.
func ReadTo[E any](ctx context.Context, c *cache.Cache, s *Sheet, count, key int, configure func(*read.Builder[*Sheet, E, struct{}])) ([]E, error) {
	proc, err := read.Cached(c, Cells{}, key, configure)
	if err != nil {
		return nil, err
	}
	return proc.Collect(ctx, s, count)
}
