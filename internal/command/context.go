// Package command implements the persona's command surface on top of pkg/cmd.
// Commands receive a *Context in Invocation.Data and answer through it.
package command

import (
	"fmt"
	"strings"

	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
)

// Context is what a command needs from the caller: who is asking, the shared
// state and somewhere to put the reply.
type Context struct {
	UserID      string
	DisplayName string
	Persona     *mind.Persona
	Sessions    *games.Registry
	// Localize rewrites command mentions in fixed texts. Nil leaves them as written.
	Localize    func(string) string

	replies []string
}

// Reply queues text for the caller.
func (c *Context) Reply(text string) {
	c.replies = append(c.replies, text)
}

// text localizes a fixed text. Call it before substituting caller input.
func (c *Context) text(s string) string {
	if c.Localize == nil {
		return s
	}
	return c.Localize(s)
}

// Output returns the queued replies joined by a blank line.
func (c *Context) Output() string {
	return strings.Join(c.replies, "\n\n")
}

func contextFrom(inv *cmd.Invocation) (*Context, error) {
	c, ok := inv.Data.(*Context)
	if !ok || c == nil {
		return nil, fmt.Errorf("wrong context type %T", inv.Data)
	}
	return c, nil
}

// All returns every command in menu order.
func All() []cmd.Command {
	cs := []cmd.Command{
		&StartCommand{},
		&HelpCommand{},
		&ProfileCommand{},
		&DarkFactCommand{},
		&MoodCommand{},
		&GameMenuCommand{},
		&GoodbyeCommand{},
	}
	for _, k := range games.Kinds {
		cs = append(cs, &GameCommand{Kind: k})
	}
	return append(cs, &CancelCommand{})
}

// Names returns the names of every command in All.
func Names() []string {
	var names []string
	for _, c := range All() {
		names = append(names, c.Name())
	}
	return names
}

// Register adds every command to reg, wrapped in mws.
func Register(reg *cmd.Registry, mws ...cmd.Middleware) {
	for _, c := range All() {
		reg.Register(cmd.Apply(c, mws...))
	}
}
