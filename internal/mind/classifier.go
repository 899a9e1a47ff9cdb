package mind

import (
	"fmt"
	"strings"

	"github.com/keshon/server-wednesday/pkg/random"
)

// Category names the rule that produced a reply.
type Category string

const (
	CategoryGreeting   Category = "greeting"
	CategoryCheerful   Category = "cheerful"
	CategoryDarkTopic  Category = "dark_topic"
	CategorySmallTalk  Category = "small_talk"
	CategoryCompliment Category = "compliment"
	CategoryDefault    Category = "default"
)

// boredWordLimit: default-rule messages with fewer words than this get a bored reply.
const boredWordLimit = 5

// DefaultDisplayName is used when the transport supplies no name.
const DefaultDisplayName = "Human"

// Reply is a classified reply.
type Reply struct {
	Category Category
	Text     string
}

// request is what every rule sees.
type request struct {
	text  string // as received
	lower string
	mood  Mood
	name  string
}

// Rule is one entry of the classifier's priority list. A rule matches when the
// lower-cased message contains any of its tokens.
type Rule struct {
	Category Category
	Tokens   []string
	respond  func(c *Classifier, r request) string
}

// Matches reports whether lower triggers the rule.
func (r Rule) Matches(lower string) bool {
	return containsAny(lower, r.Tokens)
}

// Classifier maps a message to a reply. Rules are checked in order and the
// first match wins; when none match the default rule applies.
type Classifier struct {
	rules []Rule
	rnd   random.Source
}

// NewClassifier builds the classifier with its fixed rule order.
func NewClassifier(src random.Source) *Classifier {
	if src == nil {
		src = random.Default()
	}
	return &Classifier{
		rnd: src,
		rules: []Rule{
			{Category: CategoryGreeting, Tokens: greetingTokens, respond: (*Classifier).greeting},
			{Category: CategoryCheerful, Tokens: cheerfulTokens, respond: (*Classifier).cheerful},
			{Category: CategoryDarkTopic, Tokens: darkTopicTokens, respond: (*Classifier).darkTopic},
			{Category: CategorySmallTalk, Tokens: smallTalkTokens, respond: (*Classifier).smallTalk},
			{Category: CategoryCompliment, Tokens: complimentTokens, respond: (*Classifier).compliment},
		},
	}
}

// Rules returns the priority list in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Match returns the category the message falls into without producing text.
func (c *Classifier) Match(text string) Category {
	lower := Normalize(text)
	for _, r := range c.rules {
		if r.Matches(lower) {
			return r.Category
		}
	}
	return CategoryDefault
}

// Classify produces the reply for text under mood.
func (c *Classifier) Classify(text string, mood Mood, displayName string) Reply {
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	req := request{text: text, lower: Normalize(text), mood: mood, name: displayName}
	for _, r := range c.rules {
		if r.Matches(req.lower) {
			return Reply{Category: r.Category, Text: r.respond(c, req)}
		}
	}
	return Reply{Category: CategoryDefault, Text: c.fallback(req)}
}

func (c *Classifier) greeting(r request) string {
	base := random.Pick(c.rnd, openingLines)
	extra, ok := greetingElaborations[r.mood]
	if !ok {
		return base
	}
	if strings.Contains(extra, "%s") {
		extra = fmt.Sprintf(extra, r.name)
	}
	return base + " " + extra
}

func (c *Classifier) cheerful(request) string {
	return random.Pick(c.rnd, cheerfulReplies)
}

func (c *Classifier) darkTopic(r request) string {
	out := random.Pick(c.rnd, darkTopicReplies)
	if strings.Contains(r.lower, "death") {
		out += "\n\n" + random.Pick(c.rnd, darkFacts)
	}
	if r.mood == MoodPhilosophical {
		out += "\n\n" + philosophicalCoda
	}
	return out
}

func (c *Classifier) smallTalk(r request) string {
	out := random.Pick(c.rnd, smallTalkReplies)
	if r.mood == MoodVulnerable {
		out += vulnerableCoda
	}
	return out
}

func (c *Classifier) compliment(request) string {
	return random.Pick(c.rnd, complimentReplies)
}

func (c *Classifier) fallback(r request) string {
	if len(strings.Fields(r.text)) < boredWordLimit {
		return random.Pick(c.rnd, boredReplies)
	}
	if p, ok := moodParagraphs[r.mood]; ok {
		return p
	}
	return moodParagraphs[MoodVulnerable]
}
