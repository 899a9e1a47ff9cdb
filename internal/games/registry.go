package games

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

// DefaultIdleTimeout is how long a session may wait for input before Sweep evicts it.
const DefaultIdleTimeout = 30 * time.Minute

// Session describes an active game. Values returned by the Registry are copies.
type Session struct {
	ID           uuid.UUID
	UserID       string
	Kind         Kind
	State        State
	StartedAt    time.Time
	LastActivity time.Time
}

type entry struct {
	Session
	game Game
}

// Options configures a Registry. Zero values fall back to defaults.
type Options struct {
	Rand        random.Source
	Now         func() time.Time
	IdleTimeout time.Duration
	// Localize is applied to fixed game texts, see Localizer.
	Localize    Localizer
	Logger      *zerolog.Logger
}

// Registry maps each user to at most one active session. Safe for
// concurrent use; every operation runs under a single lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	rnd      random.Source
	now      func() time.Time
	idle     time.Duration
	loc      Localizer
	log      zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.Rand == nil {
		opts.Rand = random.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Registry{
		sessions: make(map[string]*entry),
		rnd:      opts.Rand,
		now:      opts.Now,
		idle:     opts.IdleTimeout,
		loc:      opts.Localize,
		log:      log,
	}
}

// Start opens a game for the user and returns its opening text. Any session
// the user already holds is replaced.
func (r *Registry) Start(userID string, kind Kind) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, intro, err := New(kind, r.rnd, r.loc)
	if err != nil {
		return "", err
	}

	now := r.now()
	e := &entry{
		Session: Session{
			ID:           uuid.New(),
			UserID:       userID,
			Kind:         kind,
			State:        g.State(),
			StartedAt:    now,
			LastActivity: now,
		},
		game: g,
	}

	ev := r.log.Info()
	if prev, ok := r.sessions[userID]; ok {
		ev = ev.Str("replaced", prev.ID.String()).Str("replaced_kind", string(prev.Kind))
	}
	r.sessions[userID] = e
	ev.Str("session", e.ID.String()).
		Str("user", userID).
		Str("kind", string(kind)).
		Msg("game started")

	return intro, nil
}

// Advance feeds input to the user's session. ok is false when the user has
// none. Lookup, transition and removal of an ended session are atomic.
func (r *Registry) Advance(userID, input string) (reply string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[userID]
	if !ok {
		return "", false
	}

	from := e.game.State()
	reply, outcome := e.game.Advance(input)
	e.State = e.game.State()
	e.LastActivity = r.now()

	if outcome.Ended() {
		delete(r.sessions, userID)
	}
	r.log.Info().
		Str("session", e.ID.String()).
		Str("user", userID).
		Str("kind", string(e.Kind)).
		Str("from", string(from)).
		Str("to", string(e.State)).
		Stringer("outcome", outcome).
		Msg("game advanced")

	return reply, true
}

// Active returns a copy of the user's session.
func (r *Registry) Active(userID string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return e.Session, true
}

// Cancel removes the user's session, reporting whether one existed.
func (r *Registry) Cancel(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[userID]
	if !ok {
		return false
	}
	delete(r.sessions, userID)
	r.log.Info().
		Str("session", e.ID.String()).
		Str("user", userID).
		Str("kind", string(e.Kind)).
		Msg("game cancelled")
	return true
}

// Sweep evicts sessions idle longer than the idle timeout and returns how
// many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := 0
	for userID, e := range r.sessions {
		if now.Sub(e.LastActivity) <= r.idle {
			continue
		}
		delete(r.sessions, userID)
		n++
		r.log.Info().
			Str("session", e.ID.String()).
			Str("user", userID).
			Str("kind", string(e.Kind)).
			Dur("idle", now.Sub(e.LastActivity)).
			Msg("game evicted")
	}
	return n
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
