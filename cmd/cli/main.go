// Command cli talks to the persona from a terminal, one line per message.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/keshon/server-wednesday/internal/app"
	"github.com/keshon/server-wednesday/internal/chat"
	"github.com/keshon/server-wednesday/internal/config"
	"github.com/keshon/server-wednesday/internal/logging"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, log)
	if err := a.Start(); err != nil {
		log.Fatal().Err(err).Msg("start")
	}
	defer a.Close()

	user := chat.Event{UserID: "console", DisplayName: os.Getenv("USER")}
	if err := repl(ctx, a.Dispatcher, user, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("console")
	}
}

// repl reads messages from in until EOF or ctx is done and prints replies.
// A line that is "!photo", optionally followed by a caption, is sent as an
// image attachment.
func repl(ctx context.Context, d *chat.Dispatcher, user chat.Event, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		ev := user
		ev.Text = sc.Text()
		if caption, ok := photo(ev.Text); ok {
			ev.Text, ev.HasAttachment = caption, true
		}
		if reply, ok := d.Handle(ctx, ev); ok {
			fmt.Fprintf(out, "%s\n\n", reply)
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

const photoDirective = "!photo"

func photo(line string) (caption string, ok bool) {
	line = strings.TrimSpace(line)
	if line == photoDirective {
		return "", true
	}
	rest, ok := strings.CutPrefix(line, photoDirective+" ")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
