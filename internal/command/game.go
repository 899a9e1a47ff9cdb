package command

import (
	"context"
	"fmt"

	"github.com/keshon/server-wednesday/internal/games"
	"github.com/keshon/server-wednesday/pkg/cmd"
)

type GameMenuCommand struct{}

func (c *GameMenuCommand) Name() string        { return "game" }
func (c *GameMenuCommand) Description() string { return "Choose your torment" }

func (c *GameMenuCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	ctx.Reply(ctx.text(gameMenu))
	return nil
}

var gameDescriptions = map[games.Kind]string{
	games.KindHideBody:  "Problem-solving exercise in corpse concealment",
	games.KindPoison:    "Identify poisons by symptoms",
	games.KindPlotNovel: "Help craft the next chapter of a gothic thriller",
	games.KindCurse:     "Create personalized hexes for your enemies",
}

// GameCommand opens a game of Kind for the caller, replacing any game in progress.
type GameCommand struct {
	Kind games.Kind
}

func (c *GameCommand) Name() string        { return string(c.Kind) }
func (c *GameCommand) Description() string { return gameDescriptions[c.Kind] }

func (c *GameCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	intro, err := ctx.Sessions.Start(ctx.UserID, c.Kind)
	if err != nil {
		return fmt.Errorf("start %s: %w", c.Kind, err)
	}
	ctx.Reply(intro)
	return nil
}

type CancelCommand struct{}

func (c *CancelCommand) Name() string        { return "cancel" }
func (c *CancelCommand) Description() string { return "Abandon a game in progress" }

func (c *CancelCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	if !ctx.Sessions.Cancel(ctx.UserID) {
		ctx.Reply(ctx.text(nothingToCancel))
		return nil
	}
	ctx.Reply(ctx.text(games.CancelledReply))
	return nil
}
