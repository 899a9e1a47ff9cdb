package cmd

import (
	"sort"
	"sync"
)

// Registry stores commands by name. It does not perform dispatch; each adapter
// looks up commands and invokes them with its own context. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds commands, replacing any with the same name.
func (r *Registry) Register(cs ...Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cs {
		r.commands[c.Name()] = c
	}
}

// Get returns the command with the given name, or nil.
func (r *Registry) Get(name string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[name]
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
