package cache

import (
	"context"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/logger"
	"github.com/kbukum/tablerw/observability"
)

type entryKey struct {
	record    reflect.Type
	procedure reflect.Type
	key       int
}

type entry struct {
	id      uuid.UUID
	value   any
	builtAt time.Time
	took    time.Duration
}

// Entry describes one cached procedure.
type Entry struct {
	ID        uuid.UUID
	Record    string
	Procedure string
	Key       int
	BuiltAt   time.Time
	BuildTime time.Duration
}

// Cache stores compiled procedures. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[entryKey]*entry
	group   singleflight.Group
	// flights maps each key to its singleflight name. reflect.Type strings
	// are not unique, so names are allocated per key.
	flights map[entryKey]string
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for build events.
func WithLogger(l *logger.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records lookups and build durations on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{entries: make(map[entryKey]*entry), flights: make(map[entryKey]string)}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get("cache")
	} else {
		c.log = c.log.WithComponent("cache")
	}
	return c
}

// GetOrBuild returns the procedure stored for record type E, procedure type P
// and key. On a miss it calls build once, stores the result and returns it;
// concurrent misses for the same key share that one call. A build error is
// returned and nothing is stored.
func GetOrBuild[E, P any](c *Cache, key int, build func() (P, error)) (P, error) {
	if build == nil {
		var zero P
		return zero, errors.InvalidConfig("build", "must not be nil")
	}
	k := entryKey{
		record:    reflect.TypeFor[E](),
		procedure: reflect.TypeFor[P](),
		key:       key,
	}
	ctx := context.Background()

	if e, ok := c.lookup(k); ok {
		c.metrics.RecordCacheLookup(ctx, true)
		return e.value.(P), nil
	}
	c.metrics.RecordCacheLookup(ctx, false)

	v, err, _ := c.group.Do(c.flight(k), func() (any, error) {
		if e, ok := c.lookup(k); ok {
			return e, nil
		}
		start := time.Now()
		p, err := build()
		if err != nil {
			return nil, err
		}
		e := &entry{id: uuid.New(), value: p, builtAt: start, took: time.Since(start)}

		c.mu.Lock()
		c.entries[k] = e
		c.mu.Unlock()

		c.metrics.RecordCompile(ctx, k.record.String(), e.took)
		c.log.Debug("procedure compiled", logger.Fields(
			"record", k.record.String(),
			"procedure", k.procedure.String(),
			"key", key,
			"entry_id", e.id.String(),
			logger.FieldDuration, e.took.Milliseconds(),
		))
		return e, nil
	})
	if err != nil {
		var zero P
		return zero, err
	}
	return v.(*entry).value.(P), nil
}

func (c *Cache) flight(k entryKey) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.flights[k]
	if !ok {
		name = strconv.Itoa(len(c.flights))
		c.flights[k] = name
	}
	return name
}

func (c *Cache) lookup(k entryKey) (*entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[k]
	return e, ok
}

// Len returns the number of stored procedures.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries lists the stored procedures ordered by record type, procedure type
// and key.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	out := make([]Entry, 0, len(c.entries))
	for k, e := range c.entries {
		out = append(out, Entry{
			ID:        e.id,
			Record:    k.record.String(),
			Procedure: k.procedure.String(),
			Key:       k.key,
			BuiltAt:   e.builtAt,
			BuildTime: e.took,
		})
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Record != b.Record {
			return a.Record < b.Record
		}
		if a.Procedure != b.Procedure {
			return a.Procedure < b.Procedure
		}
		return a.Key < b.Key
	})
	return out
}

// Reset removes every stored procedure.
func (c *Cache) Reset() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
	c.log.Debug("cache reset")
}
