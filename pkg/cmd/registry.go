package cmd

import (
	"sort"

	"emperror.dev/errors"
)

const (
	// ErrNotFound is returned by Lookup for names nobody registered.
	ErrNotFound = errors.Sentinel("command not found")
	// ErrDuplicateCommand is returned by Register when the name is taken.
	ErrDuplicateCommand = errors.Sentinel("duplicate command")
)

// Registry stores commands by name. It does not perform dispatch; the router
// looks up commands and invokes them with its own context.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. The first registration of a name wins and any later
// one is rejected, so startup fails the same way every time.
func (r *Registry) Register(c Command) error {
	name := c.Name()
	if name == "" {
		return errors.New("command name is empty")
	}
	if _, ok := r.commands[name]; ok {
		return errors.WithMessagef(ErrDuplicateCommand, "register %q", name)
	}
	r.commands[name] = c
	return nil
}

// MustRegister is Register for static command tables.
func (r *Registry) MustRegister(cs ...Command) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the command with the given name.
func (r *Registry) Lookup(name string) (Command, error) {
	c, ok := r.commands[name]
	if !ok {
		return nil, errors.WithMessagef(ErrNotFound, "lookup %q", name)
	}
	return c, nil
}

// All returns all registered commands, sorted by name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
