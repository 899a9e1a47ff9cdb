// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How text becomes an
// invocation and where replies go is left to the adapter that dispatches it.
package cmd

import (
	"context"
	"strings"
)

// Invocation carries what any command runner can pass: the command name,
// its arguments and an opaque payload. Adapters set Data to their own context.
type Invocation struct {
	Name string
	Args []string
	Data any
}

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Parse reads a command token such as "/poison" or "/poison@wednesday_bot"
// from the start of text. The @suffix is dropped and the name lower-cased.
// ok is false when text does not start with prefix followed by a name.
func Parse(text, prefix string) (inv Invocation, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || prefix == "" || !strings.HasPrefix(fields[0], prefix) {
		return Invocation{}, false
	}
	name := strings.TrimPrefix(fields[0], prefix)
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return Invocation{}, false
	}
	return Invocation{Name: strings.ToLower(name), Args: fields[1:]}, true
}
