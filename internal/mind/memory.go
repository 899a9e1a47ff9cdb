package mind

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

const (
	persistentAfter = 10 // messages
	absentAfterDays = 7
)

// Profile is what the persona remembers about one user.
type Profile struct {
	UserID            string
	DisplayName       string
	FirstContactAt    time.Time
	MessageCount      int
	DarkInterests     []string // watch-list keywords, first-seen order
	LastInteractionAt time.Time
	// PriorGap is the silence that preceded the latest interaction.
	PriorGap time.Duration
	Grudges  []string // reserved
}

func (p *Profile) clone() Profile {
	out := *p
	out.DarkInterests = slices.Clone(p.DarkInterests)
	out.Grudges = slices.Clone(p.Grudges)
	return out
}

// Memory holds every user profile for the process lifetime. Safe for
// concurrent use; one store-wide lock serialises writes.
type Memory struct {
	mu    sync.RWMutex
	users map[string]*Profile
	rnd   random.Source
	now   func() time.Time
	log   zerolog.Logger
}

// NewMemory returns an empty store.
func NewMemory(opts Options) *Memory {
	opts = opts.withDefaults()
	return &Memory{
		users: make(map[string]*Profile),
		rnd:   opts.Rand,
		now:   opts.Now,
		log:   *opts.Logger,
	}
}

// RecordInteraction notes one inbound message, creating the profile on first
// sight and adding any newly seen watch-list keywords.
func (m *Memory) RecordInteraction(userID, text, displayName string) {
	now := m.now()
	lower := Normalize(text)

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.users[userID]
	if !ok {
		if displayName == "" {
			displayName = DefaultDisplayName
		}
		p = &Profile{
			UserID:         userID,
			DisplayName:    displayName,
			FirstContactAt: now,
		}
		m.users[userID] = p
		m.log.Info().Str("user", userID).Str("name", displayName).Msg("profile created")
	}

	if !p.LastInteractionAt.IsZero() {
		p.PriorGap = now.Sub(p.LastInteractionAt)
	}
	p.MessageCount++
	p.LastInteractionAt = now

	for _, kw := range DarkWatchList {
		if strings.Contains(lower, kw) && !slices.Contains(p.DarkInterests, kw) {
			p.DarkInterests = append(p.DarkInterests, kw)
		}
	}
}

// Profile returns a copy of the user's profile.
func (m *Memory) Profile(userID string) (Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.users[userID]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}

// Len returns the number of known users.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// ProfileComment returns one remark about the user, or false when nothing
// about them is remarkable yet. It does not modify the profile.
func (m *Memory) ProfileComment(userID string) (string, bool) {
	p, ok := m.Profile(userID)
	if !ok {
		return "", false
	}
	candidates := profileComments(p, m.now())
	if len(candidates) == 0 {
		return "", false
	}
	return random.Pick(m.rnd, candidates), true
}

// profileComments evaluates each predicate independently. Absence is the
// longer of the gap before the latest message and the time since it.
func profileComments(p Profile, now time.Time) []string {
	var out []string
	if p.MessageCount > persistentAfter {
		out = append(out, fmt.Sprintf(persistenceComment, p.MessageCount))
	}
	if len(p.DarkInterests) > 0 {
		out = append(out, fmt.Sprintf(interestsComment, strings.Join(p.DarkInterests, ", ")))
	}
	if !p.LastInteractionAt.IsZero() {
		gap := max(p.PriorGap, now.Sub(p.LastInteractionAt))
		if days := int(gap.Hours() / 24); days > absentAfterDays {
			out = append(out, fmt.Sprintf(absenceComment, days))
		}
	}
	return out
}
