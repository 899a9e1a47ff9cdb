package command

import (
	"context"
	"time"

	"github.com/keshon/server-wednesday/pkg/cmd"

	"github.com/rs/zerolog"
)

// WithLogging logs every command run with its caller, duration and error.
func WithLogging(log zerolog.Logger) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			ev := log.Info()
			if err != nil {
				ev = log.Error().Err(err)
			}
			if cc, ok := inv.Data.(*Context); ok && cc != nil {
				ev = ev.Str("user", cc.UserID)
			}
			ev.Str("command", c.Name()).
				Strs("args", inv.Args).
				Dur("took", time.Since(start)).
				Msg("command executed")
			return err
		})
	}
}
