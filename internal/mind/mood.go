package mind

import (
	"sync"
	"time"

	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

// Mood is the single process-wide affect that colours replies.
type Mood string

const (
	MoodPlotting      Mood = "plotting"
	MoodLiterary      Mood = "literary"
	MoodScientific    Mood = "scientific"
	MoodPhilosophical Mood = "philosophical"
	MoodVulnerable    Mood = "vulnerable" // rare
)

// DefaultMoodInterval is how long a mood holds before the next read resamples it.
const DefaultMoodInterval = time.Hour

// Moods lists every mood; MoodWeights holds the matching draw weights.
var (
	Moods       = []Mood{MoodPlotting, MoodLiterary, MoodScientific, MoodPhilosophical, MoodVulnerable}
	MoodWeights = []float64{0.25, 0.25, 0.25, 0.24, 0.01}
)

// DrawMood samples a mood from MoodWeights.
func DrawMood(src random.Source) Mood {
	return Moods[random.Weighted(src, MoodWeights)]
}

// Description returns the self-report for the mood command.
func (m Mood) Description() string {
	if d, ok := moodDescriptions[m]; ok {
		return d
	}
	return unknownMoodDescription
}

// MoodScheduler holds the live mood and when it was set. The mood is only
// ever replaced by Current, once it has gone stale.
type MoodScheduler struct {
	mu       sync.Mutex
	current  Mood
	setAt    time.Time
	interval time.Duration
	rnd      random.Source
	now      func() time.Time
	log      zerolog.Logger
}

// NewMoodScheduler draws the initial mood at opts.Now().
func NewMoodScheduler(opts Options) *MoodScheduler {
	opts = opts.withDefaults()
	s := &MoodScheduler{
		interval: opts.MoodInterval,
		rnd:      opts.Rand,
		now:      opts.Now,
		log:      *opts.Logger,
	}
	s.current = DrawMood(s.rnd)
	s.setAt = s.now()
	s.log.Debug().Str("mood", string(s.current)).Msg("initial mood drawn")
	return s
}

// Current returns the live mood, resampling first if more than the interval
// has passed since it was set. Read and resample happen under one lock.
func (s *MoodScheduler) Current() Mood {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.setAt) > s.interval {
		prev := s.current
		s.current = DrawMood(s.rnd)
		s.setAt = now
		s.log.Info().
			Str("from", string(prev)).
			Str("to", string(s.current)).
			Msg("mood resampled")
	}
	return s.current
}

// Snapshot returns the live mood and its set time without resampling.
func (s *MoodScheduler) Snapshot() (Mood, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.setAt
}
