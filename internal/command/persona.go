package command

import (
	"context"
	"fmt"

	"github.com/keshon/server-wednesday/pkg/cmd"
)

// ProfileCommand reports one remark about the caller, if any has been earned.
type ProfileCommand struct{}

func (c *ProfileCommand) Name() string        { return "profile" }
func (c *ProfileCommand) Description() string { return "My psychological assessment of you" }

func (c *ProfileCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	comment, ok := ctx.Persona.Memory.ProfileComment(ctx.UserID)
	if !ok {
		ctx.Reply(ctx.text(profileUnknown))
		return nil
	}
	ctx.Reply(fmt.Sprintf(ctx.text(profileReport), comment))
	return nil
}

type DarkFactCommand struct{}

func (c *DarkFactCommand) Name() string        { return "darkfact" }
func (c *DarkFactCommand) Description() string { return "Today's morbid education" }

func (c *DarkFactCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	ctx.Reply(fmt.Sprintf(ctx.text(darkFactReport), ctx.Persona.DarkFact()))
	return nil
}

// MoodCommand reads the mood through the scheduler, so a stale mood is
// resampled before it is described.
type MoodCommand struct{}

func (c *MoodCommand) Name() string        { return "mood" }
func (c *MoodCommand) Description() string { return "My current emotional configuration" }

func (c *MoodCommand) Run(_ context.Context, inv *cmd.Invocation) error {
	ctx, err := contextFrom(inv)
	if err != nil {
		return err
	}
	ctx.Reply(fmt.Sprintf(ctx.text(moodReport), ctx.Persona.Moods.Current().Description()))
	return nil
}
