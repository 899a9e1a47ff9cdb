package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/keshon/server-wednesday/pkg/retrylimit"

	"github.com/bwmarrin/discordgo"
)

// messageSender is the part of *discordgo.Session used for replies.
type messageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// sendChunks delivers text in order, one rate-limited, retried send per chunk.
func sendChunks(ctx context.Context, s messageSender, lim *retrylimit.AdaptiveLimiter, cfg retrylimit.RetryConfig, channelID, text string) error {
	for i, chunk := range splitMessage(text, maxMessageLen) {
		err := retrylimit.WithRetryConfig(ctx, func() error {
			_, err := s.ChannelMessageSend(channelID, chunk)
			return classifySendError(err)
		}, lim, cfg)
		if err != nil {
			return fmt.Errorf("send chunk %d: %w", i+1, err)
		}
	}
	return nil
}

// classifySendError tags REST failures with their status so the retry loop
// can tell throttling and server faults from requests that will never work.
func classifySendError(err error) error {
	if err == nil {
		return nil
	}
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) || rest.Response == nil {
		return err
	}
	code := rest.Response.StatusCode
	se := &retrylimit.StatusError{Code: code, Err: err}
	if code == http.StatusTooManyRequests || code >= 500 {
		return se
	}
	return retrylimit.Fatal(se)
}
