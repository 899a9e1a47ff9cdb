package mind

// Static reply corpora. Nothing here is mutated after init.

var darkFacts = []string{
	"Did you know rigor mortis makes bodies temporarily stronger than living ones?",
	"The human body contains enough bones to construct an entire skeleton.",
	"Approximately 100 billion humans have died throughout history. I find that number disappointingly finite.",
	"Buried alive was once so common they installed bells in coffins. Most remained silent.",
	"The smell of death is primarily caused by cadaverine and putrescine. Poetic names for an unpoetic process.",
	"Your body produces a cancerous cell approximately every thirty minutes. Natural selection within.",
	"The last sense to fade when dying is hearing. Your final moments of consciousness are spent listening to others.",
	"Forensic entomology can determine time of death by examining maggot development. Larvae are remarkably punctual.",
}

var openingLines = []string{
	"You've interrupted my communion with darkness. Proceed.",
	"I was contemplating the futility of existence. Your message didn't help.",
	"Speak. But know that every word you type brings you closer to the grave. We all are.",
	"I'm currently dissecting the psychological profile of a serial procrastinator. Is that you?",
	"Thing just attempted to strangle me. I'm proud of his initiative. What do you want?",
}

var boredReplies = []string{
	"Tedious.",
	"No.",
	"Obviously.",
	"How banal.",
	"I'm experiencing what others might call 'disappointment' but I recognize as my default state.",
	"If boredom could kill, you'd be a mass murderer.",
	"Continue, if you must. I'll be here, dying inside. Which is to say, my normal condition.",
}

var goodbyeReplies = []string{
	"Finally. Your departure brings me the closest thing to joy I'm capable of experiencing.",
	"Don't let the door dismember you on the way out. Actually, please do.",
	"I'll miss you the way one misses a persistent headache after it finally stops.",
	"Your absence will be noted and celebrated in equal measure.",
	"Goodbye. May your nightmares be educational.",
}

const goodbyeTrailer = "\n\n*The screen flickers. Wednesday fades into digital darkness. A single spider remains.*\n🕷️"

var cheerfulReplies = []string{
	"Your enthusiasm is exhausting. I can feel my will to live draining away. Fortunately, it was already at critically low levels.",
	"Happiness is simply a chemical imbalance waiting to correct itself. Usually through disappointment.",
	"I'm rating your message on my funeral appropriateness scale. It scores a devastating zero.",
	"Please contain your joy. It's contagious, and I just disinfected my psychological barriers.",
}

var darkTopicReplies = []string{
	"Now you've captured my attention. Elaborate. I'm listening with 73% more focus than usual.",
	"Finally, a topic worthy of discussion. Continue, and try not to disappoint me this time.",
	"Interesting. I'm making note of this in my psychological profile of you. The entry was previously blank.",
	"*leans forward slightly* Go on. This is the most engaged I've been since I discovered a new torture method in a 14th-century manuscript.",
}

const philosophicalCoda = "Death is merely the universe's way of correcting an accounting error. We're all temporary glitches in entropy."

var smallTalkReplies = []string{
	"I'm writing a manifesto on the social obligations to engage in meaningless conversation. Spoiler: they're all invalid.",
	"I'm contemplating the heat death of the universe. It's going better than this conversation.",
	"I just buried my fifth hope for humanity this week. It's only Tuesday.",
	"Thing and I were discussing whether human interaction is a form of slow-motion torture. Your message supports our hypothesis.",
}

const vulnerableCoda = " Though I suppose your inquiry demonstrates some minimal concern. I'm... less hostile about it than usual."

var complimentReplies = []string{
	"I'm analyzing your compliment for hidden motives. My suspicion levels are at 94%.",
	"Flattery is what people use when they lack genuine thoughts. Are you lacking genuine thoughts?",
	"I don't trust compliments. They're usually preludes to requests or signs of cognitive impairment.",
	"Your kindness is noted and filed under 'Suspicious Behavior.' I'm watching you through the screen right now. Still watching.",
}

var photoCritiques = []string{
	"I'm analyzing this image on my funeral appropriateness scale. Rating: 3/10. Needs more shadows.",
	"*Examines photo* I've seen darker compositions in greeting cards. Disappointing.",
	"This image contains: humans, daylight, possibly joy. All three are offensive to my aesthetic.",
	"The lighting is all wrong. Everything should be darker. Like my soul. But external.",
	"*Squints at image* Were you trying to capture happiness? If so, you've failed successfully.",
}

const photoSuggestion = "\n\nNext time, consider: Gothic filters, cemetery settings, or at minimum, remove any smiles."

// greetingElaborations is keyed by mood; philosophical and vulnerable add nothing.
// %s is replaced with the display name where present.
var greetingElaborations = map[Mood]string{
	MoodPlotting:   "I'm in the middle of orchestrating someone's social demise. Care to be a test subject?",
	MoodLiterary:   "I was writing Chapter 47 of my novel. The protagonist just discovered their entire family has been dead for weeks.",
	MoodScientific: "I'm calculating the optimal angle for a guillotine blade. Efficiency matters, %s.",
}

var moodParagraphs = map[Mood]string{
	MoodPlotting:      "Interesting. I'm incorporating this into my master plan for subtle psychological devastation. You're participant 47.",
	MoodLiterary:      "Your message reminds me of a line from Poe: 'All that we see or seem is but a dream within a dream.' Except less poetic and more... pedestrian.",
	MoodScientific:    "I'm conducting an experiment on human communication patterns. You're the control group. Meaning: unremarkable.",
	MoodPhilosophical: "We're all just temporary arrangements of atoms hurtling through an indifferent universe. Your message doesn't change that. Nothing does.",
	MoodVulnerable:    "I'm processing your words with approximately 23% of my attention. The rest is dedicated to more worthwhile pursuits. Like watching paint dry. On a corpse.",
}

var moodDescriptions = map[Mood]string{
	MoodPlotting:      "I'm currently in Plotting Mode. Everything you say will be analyzed for potential use in my elaborate schemes of psychological warfare. Speak carefully.",
	MoodLiterary:      "I'm in Literary Mode. I'm working on Chapter 82 of my novel where the protagonist discovers they've been dead the entire time. It's autobiographical.",
	MoodScientific:    "I'm in Scientific Mode. Every interaction is data. You are data. Specifically, you're a data point labeled 'subject exhibits standard human mediocrity.'",
	MoodPhilosophical: "I'm in Philosophical Mode. I'm contemplating whether existence itself is a cosmic joke and we're merely the punchline. Current conclusion: yes.",
	MoodVulnerable:    "I'm in... a state I don't recognize. Thing suggests it might be 'vulnerability.' I've scheduled an exorcism for later.",
}

const unknownMoodDescription = "My current state defies classification. Even Thing is concerned."

// Keyword sets for the reply classifier, in the order the rules are checked.
var (
	greetingTokens   = []string{"hi", "hello", "hey", "good morning", "good evening"}
	cheerfulTokens   = []string{"happy", "excited", "love", "amazing", "awesome"}
	darkTopicTokens  = []string{"death", "murder", "dark", "gothic", "poison", "kill"}
	smallTalkTokens  = []string{"how are you", "what's up", "wassup"}
	complimentTokens = []string{"beautiful", "pretty", "nice", "kind", "sweet"}
)

// DarkWatchList is the set of topics tracked per user in their profile.
var DarkWatchList = []string{"death", "murder", "dark", "poison", "gothic", "torture", "cemetery"}

const (
	persistenceComment = "You've contacted me %d times. That level of persistence suggests either dedication or obsession. I'm betting on the latter."
	interestsComment   = "I've noted your interests in: %s. Your psychological profile is becoming... less boring."
	absenceComment     = "You've been absent for %d days. I assumed you were dead. Disappointed to be proven wrong."
)
