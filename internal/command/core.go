package command

import (
	"context"
	"fmt"

	"github.com/keshon/server-wednesday/internal/mind"
	"github.com/keshon/server-wednesday/pkg/cmd"
)

type StartCommand struct{}

func (c *StartCommand) Name() string        { return "start" }
func (c *StartCommand) Description() string { return "Initial summoning ritual" }

func (c *StartCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	name := ctx.DisplayName
	if name == "" {
		name = mind.DefaultDisplayName
	}
	ctx.Reply(fmt.Sprintf(ctx.text(welcomeText), name))
	return nil
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "List commands" }

func (c *HelpCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	ctx.Reply(ctx.text(helpText))
	return nil
}

type GoodbyeCommand struct{}

func (c *GoodbyeCommand) Name() string        { return "goodbye" }
func (c *GoodbyeCommand) Description() string { return "Terminate communication" }

func (c *GoodbyeCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	ctx.Reply(ctx.Persona.Goodbye())
	return nil
}
