package discord

import (
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/keshon/server-wednesday/internal/chat"

	"github.com/bwmarrin/discordgo"
)

// maxMessageLen is Discord's per-message character limit.
const maxMessageLen = 2000

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

// toEvent converts a Discord message into a chat event. ok is false for
// messages the bot must not answer: its own, other bots', and guild messages
// that do not mention it when mentionOnly is set.
func toEvent(m *discordgo.Message, botID string, mentionOnly bool) (chat.Event, bool) {
	if m == nil || m.Author == nil || m.Author.ID == botID || m.Author.Bot {
		return chat.Event{}, false
	}

	mentioned := slices.ContainsFunc(m.Mentions, func(u *discordgo.User) bool {
		return u != nil && u.ID == botID
	})
	if m.GuildID != "" && mentionOnly && !mentioned {
		return chat.Event{}, false
	}

	return chat.Event{
		UserID:        m.Author.ID,
		DisplayName:   displayName(m),
		Text:          stripMention(m.Content, botID),
		HasAttachment: hasImage(m.Attachments),
	}, true
}

// displayName prefers the guild nickname, then the global name, then the username.
func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

func stripMention(content, botID string) string {
	r := strings.NewReplacer("<@"+botID+">", "", "<@!"+botID+">", "")
	return strings.TrimSpace(r.Replace(content))
}

func hasImage(atts []*discordgo.MessageAttachment) bool {
	for _, a := range atts {
		if a == nil {
			continue
		}
		if strings.HasPrefix(a.ContentType, "image/") {
			return true
		}
		if a.ContentType == "" && slices.Contains(imageExts, strings.ToLower(path.Ext(a.Filename))) {
			return true
		}
	}
	return false
}

// splitMessage cuts msg into chunks of at most limit bytes, preferring
// newline boundaries and never splitting a rune.
func splitMessage(msg string, limit int) []string {
	var result []string
	for len(msg) > limit {
		cut := strings.LastIndex(msg[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(msg[cut]) {
				cut--
			}
		}
		if chunk := strings.TrimSpace(msg[:cut]); chunk != "" {
			result = append(result, chunk)
		}
		msg = strings.TrimSpace(msg[cut:])
	}
	if msg != "" {
		result = append(result, msg)
	}
	return result
}
