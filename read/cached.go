package read

import (
	"github.com/kbukum/tablerw/cache"
	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/sink"
)

// Cached returns the procedure stored in c for record type E and key,
// compiling it on first use from a fresh builder passed to configure.
//
// Read and write procedures for the same record type and key are stored
// separately.
func Cached[S, E, D any](c *cache.Cache, r sink.Reader[S], key int, configure func(*Builder[S, E, D])) (Procedure[S, E], error) {
	if configure == nil {
		return nil, errors.InvalidConfig("configure", "must not be nil")
	}
	return cache.GetOrBuild[E](c, key, func() (Procedure[S, E], error) {
		b := NewWithData[S, E, D](r)
		configure(b)
		return b.Compile()
	})
}
