package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/logger"
)

// Factory builds a backend from a validated Config.
type Factory func(ctx context.Context, cfg Config) (Storage, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// RegisterFactory makes a backend available to New under name. Backend
// packages call it from init.
func RegisterFactory(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = f
}

// Providers lists the registered provider names.
func Providers() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the backend cfg.Provider names, retrying its operations under
// cfg.Retry. It logs to the "storage" component logger.
func New(ctx context.Context, cfg Config) (Storage, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factoriesMu.RLock()
	f, ok := factories[cfg.Provider]
	factoriesMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotRegistered, "Storage provider "+cfg.Provider+" is not registered")
	}

	logger.Get("storage").Info("initializing storage", map[string]interface{}{"provider": cfg.Provider})
	s, err := f(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(s, cfg.Retry), nil
}
