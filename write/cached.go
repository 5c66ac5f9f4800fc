package write

import (
	"github.com/kbukum/tablerw/cache"
	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/sink"
)

// Cached returns the procedure stored in c for record type E and key,
// compiling it on first use from a fresh builder passed to configure.
//
// A key identifies one layout per record type. Reusing a key with a different
// configure function returns the procedure compiled first.
func Cached[S, E, D any](c *cache.Cache, w sink.Writer[S], key int, configure func(*Builder[S, E, D])) (Procedure[S, E], error) {
	if configure == nil {
		return nil, errors.InvalidConfig("configure", "must not be nil")
	}
	return cache.GetOrBuild[E](c, key, func() (Procedure[S, E], error) {
		b := NewWithData[S, E, D](w)
		configure(b)
		return b.Compile()
	})
}
