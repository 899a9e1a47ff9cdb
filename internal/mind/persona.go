// Package mind holds the persona's state and reply logic: the mood
// scheduler, the keyword reply classifier and the per-user memory store.
package mind

import (
	"time"

	"github.com/keshon/server-wednesday/pkg/random"

	"github.com/rs/zerolog"
)

// Options configures the mind components. Zero values fall back to defaults.
type Options struct {
	MoodInterval time.Duration
	Rand         random.Source
	Now          func() time.Time
	Logger       *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.MoodInterval <= 0 {
		o.MoodInterval = DefaultMoodInterval
	}
	if o.Rand == nil {
		o.Rand = random.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Persona bundles the mood, classifier and memory that answer chat messages.
// It is built once at start-up and shared by every handler.
type Persona struct {
	Moods      *MoodScheduler
	Memory     *Memory
	Classifier *Classifier
	rnd        random.Source
}

// NewPersona builds a persona with fresh state.
func NewPersona(opts Options) *Persona {
	opts = opts.withDefaults()
	return &Persona{
		Moods:      NewMoodScheduler(opts),
		Memory:     NewMemory(opts),
		Classifier: NewClassifier(opts.Rand),
		rnd:        opts.Rand,
	}
}

// Rand exposes the persona's random source for callers that share its draws.
func (p *Persona) Rand() random.Source { return p.rnd }

// Respond classifies text under the current mood.
func (p *Persona) Respond(text, displayName string) Reply {
	return p.Classifier.Classify(text, p.Moods.Current(), displayName)
}

// DarkFact returns one fact from the dark facts corpus.
func (p *Persona) DarkFact() string {
	return random.Pick(p.rnd, darkFacts)
}

// Goodbye returns a farewell followed by the fade-out line.
func (p *Persona) Goodbye() string {
	return random.Pick(p.rnd, goodbyeReplies) + goodbyeTrailer
}

// PhotoCritique returns the reply for an image attachment.
func (p *Persona) PhotoCritique() string {
	return random.Pick(p.rnd, photoCritiques) + photoSuggestion
}
