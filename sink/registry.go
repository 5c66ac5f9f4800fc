package sink

import (
	"reflect"
	"sort"
	"sync"

	"github.com/kbukum/tablerw/errors"
)

// Registry holds at most one Writer and one Reader per sink type.
type Registry struct {
	mu      sync.RWMutex
	writers map[reflect.Type]any
	readers map[reflect.Type]any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[reflect.Type]any),
		readers: make(map[reflect.Type]any),
	}
}

// RegisterWriter records w as the write strategy for sink type S.
// A second registration for the same S is rejected.
func RegisterWriter[S any](r *Registry, w Writer[S]) error {
	return r.put(r.writers, reflect.TypeFor[S](), w)
}

// RegisterReader records rd as the read strategy for sink type S.
// A second registration for the same S is rejected.
func RegisterReader[S any](r *Registry, rd Reader[S]) error {
	return r.put(r.readers, reflect.TypeFor[S](), rd)
}

// WriterFor returns the write strategy registered for sink type S.
func WriterFor[S any](r *Registry) (Writer[S], error) {
	v, err := r.get(r.writers, reflect.TypeFor[S]())
	if err != nil {
		return nil, err
	}
	return v.(Writer[S]), nil
}

// ReaderFor returns the read strategy registered for sink type S.
func ReaderFor[S any](r *Registry) (Reader[S], error) {
	v, err := r.get(r.readers, reflect.TypeFor[S]())
	if err != nil {
		return nil, err
	}
	return v.(Reader[S]), nil
}

// Kinds returns the sorted names of all sink types with at least one strategy.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(r.writers)+len(r.readers))
	for t := range r.writers {
		seen[t.String()] = struct{}{}
	}
	for t := range r.readers {
		seen[t.String()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) put(m map[reflect.Type]any, t reflect.Type, v any) error {
	if v == nil {
		return errors.InvalidConfig("strategy", "must not be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := m[t]; ok {
		return errors.AlreadyRegistered(t.String())
	}
	m[t] = v
	return nil
}

func (r *Registry) get(m map[reflect.Type]any, t reflect.Type) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := m[t]
	if !ok {
		return nil, errors.NotRegistered(t.String())
	}
	return v, nil
}
