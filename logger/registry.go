package logger

import (
	"sort"
	"sync"
)

var components = struct {
	mu     sync.RWMutex
	byName map[string]*Logger
}{byName: make(map[string]*Logger)}

// Register sets the logger of component name. A nil l removes the entry.
func Register(name string, l *Logger) {
	components.mu.Lock()
	defer components.mu.Unlock()
	if l == nil {
		delete(components.byName, name)
		return
	}
	components.byName[name] = l
}

// Get returns the logger of component name. A component nobody registered
// gets the global logger tagged with name.
func Get(name string) *Logger {
	components.mu.RLock()
	l, ok := components.byName[name]
	components.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterComponents tags base with each name and registers the results,
// replacing loggers set up by an earlier call.
func RegisterComponents(base *Logger, names ...string) {
	if base == nil {
		base = GetGlobalLogger()
	}
	components.mu.Lock()
	defer components.mu.Unlock()
	for _, name := range names {
		components.byName[name] = base.WithComponent(name)
	}
}

// Components returns the registered component names in order.
func Components() []string {
	components.mu.RLock()
	defer components.mu.RUnlock()
	names := make([]string, 0, len(components.byName))
	for name := range components.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
