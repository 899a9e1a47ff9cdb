package games

const (
	// CancelledReply acknowledges an explicit cancel in any game and state.
	CancelledReply = "Conversation terminated. Return when you're ready to take this seriously."

	invalidChoiceReply = "Invalid choice. Even hypothetical crimes require following instructions."
)

const hideBodyIntro = `**HIDE A BODY: SCENARIO INITIATED**

*Wednesday's eyes narrow with interest*

You've just... acquired... a body. Hypothetically speaking, of course. I'm legally required to say that.

The body is in your living room. It's 2 AM. You have 6 hours before sunrise.

**WHERE DO YOU HIDE IT?**

A) Bury it in the backyard
B) Dissolve it in acid (classic)
C) Wood chipper incident
D) Elaborate alibi and frame someone else

Reply with your choice (A, B, C, or D).`

var hideBodyLocations = map[string]string{
	"A": "Backyard burial. Pedestrian but effective. However, cadaver dogs are trained to detect human remains 15 feet underground. We need to go deeper. Or add cayenne pepper to confuse them. Both work.",
	"B": "Acid dissolution. *nods approvingly* You've been paying attention. Hydrofluoric acid works best. Though I recommend a plastic container—acid tends to eat through metal. Don't ask how I know.",
	"C": "Wood chipper. Theatrical but messy. The spray pattern alone would incriminate you. Points for creativity, deductions for practical failure.",
	"D": "Frame someone else. *slow clap* Now you're thinking like a true sociopath. I'm proud. And concerned. Mostly proud.",
}

const hideBodyEvidencePrompt = "\n\n**WHAT ABOUT THE EVIDENCE?**\n\nYou've left behind:\n• Fingerprints\n• DNA\n• Digital footprint\n• Witnesses\n\nHow do you handle this?"

var hideBodyAssessments = []string{
	"Adequate. You'd likely evade capture for... 6-8 weeks. Then amateur mistakes would surface.",
	"Impressive. I'm updating your file from 'harmless civilian' to 'person of mild interest.'",
	"Catastrophically flawed. You'd be arrested within 48 hours. I'd visit you in prison. Once.",
	"I've seen worse plans. Barely. Consider consulting with more experienced criminals. Like me.",
}

// plan, assessment
const hideBodyVerdict = `**YOUR PLAN:**
%s

**WEDNESDAY'S ASSESSMENT:**

%s

**LESSON LEARNED:**
The perfect crime exists only in theory. In practice, entropy and human error conspire against all carefully laid plans. Much like life itself.

*Game concluded. Your psychological profile has been updated.*

Type /game for more torments.`

type specimen struct {
	Name     string
	Symptoms string
	Trivia   string
}

var specimens = []specimen{
	{"Arsenic", "Garlic breath, severe stomach pain, bloody diarrhea, dehydration", `Known as "inheritance powder" in Renaissance Italy`},
	{"Cyanide", "Bitter almond smell, seizures, loss of consciousness, cherry-red skin", "Blocks cellular respiration. Death in minutes"},
	{"Ricin", "Severe vomiting, internal bleeding, organ failure over days", "Derived from castor beans. Just 1 milligram is fatal"},
	{"Hemlock", "Ascending paralysis starting from legs, respiratory failure", "Killed Socrates. At least he died doing philosophy"},
	{"Strychnine", "Violent muscle spasms, arched back, facial distortion", "Victim remains conscious throughout. Quite theatrical"},
}

// symptoms
const poisonQuestion = `**NAME THAT POISON**

*Wednesday slides a dossier across the table*

A body was discovered this morning. Symptoms observed:

%s

**WHAT POISON WAS USED?**

Reply with your answer. Spelling matters. Accuracy matters more.`

// name, trivia
const poisonCorrect = `**CORRECT.**

*The faintest flicker of approval crosses Wednesday's face*

The answer was indeed %s. %s

Your knowledge of toxicology is... acceptable. I'm adding "potentially dangerous" to your profile. Consider it a compliment.

Type /poison to try again, or /game for other options.`

// name, trivia
const poisonIncorrect = `**INCORRECT.**

The answer was %s. %s

Your ignorance could prove fatal. Educate yourself. I recommend starting with "The Poisoner's Handbook" by Deborah Blum.

Type /poison to redeem yourself, or /game for other failures.`

const plotNovelIntro = `**COLLABORATIVE FICTION: INITIATED**

I'm writing Chapter 127 of my Gothic thriller. Current status:

- Protagonist: Elena, a forensic pathologist with necromantic tendencies
- Setting: Victorian asylum converted into luxury apartments
- Problem: Residents keep dying in historically accurate ways
- Twist: They're all already dead but don't know it

**YOUR TASK:**
What happens next? Give me one plot development.

Be dark. Be twisted. Disappoint me and this conversation ends.`

var plotNovelAssessments = []string{
	"Pedestrian but salvageable. I'll incorporate elements while removing the mediocrity.",
	"*Actually pauses typing* This is... not terrible. I'm genuinely surprised. Disturbing.",
	"Did you copy this from somewhere? It's suspiciously competent.",
	"I've read worse published novels. That's not a compliment—publishing standards are criminally low.",
	"Clichéd, predictable, and lacking imagination. Perfect for commercial fiction.",
	"*Rare flicker of interest* Continue. This might actually improve my chapter.",
}

// assessment
const plotNovelAddition = `**ASSESSMENT:**

%s

**MY ADDITION:**

*Wednesday types for 47 seconds*

"Elena traced the autopsy scar on her own chest, remembering. The residents weren't dying—they were remembering. Each death a echo of their first. The asylum never closed. It simply... transitioned. They all had."

Your contribution: Filed under 'Potentially Useful.' That's the highest compliment I give.

Type /plotnovel for more collaboration, or /game for other options.`

const curseIntro = `**CURSE GENERATOR: ACTIVATED**

*Wednesday opens an ancient leather-bound book*

I'll craft a personalized hex for your enemy. Vengeance should always be customized.

**WHO IS YOUR TARGET?**

Provide a name or title. "My boss," "my ex," "that person who chews loudly" are all acceptable.`

// target
const curseReasonPrompt = `**TARGET IDENTIFIED:** %s

*Wednesday sharpens a ceremonial dagger*

**WHAT DID THEY DO TO DESERVE THIS CURSE?**

Be specific. The hex must fit the crime. Karmic balance matters, even in vengeance.`

const (
	curseTargetMissing = "Even I cannot hex the void. **WHO IS YOUR TARGET?**"
	curseReasonMissing = "Silence is not a transgression. **WHAT DID THEY DO?**"
)

// curseTemplates take {target} and {reason} verbatim.
var curseTemplates = []string{
	"May {target}'s coffee always be lukewarm and their Wi-Fi perpetually buffer during crucial moments. {reason} demands no less.",
	"I curse {target} to forever find single socks, never pairs. Their laundry shall know only chaos because {reason}.",
	"Upon {target}, I bestow the curse of eternal autocorrect fails and phantom phone vibrations. {reason} has earned this.",
	"May {target}'s pillow always be warm on both sides, and may they stub their toe weekly. For {reason}, this is fitting.",
	"I hex {target} with the curse of being forever interrupted mid-sentence and having their favorite shows canceled. {reason} justifies this hex.",
}

// target, reason, hex
const curseResult = `**CURSE GENERATED**

*Wednesday lights black candles*

**Target:** %s
**Transgression:** %s

**THE HEX:**

%s

*Wednesday closes the book with a satisfying thud*

The curse is now active. Results may vary. If nothing happens, it's because the universe is indifferent, not because curses aren't real. Definitely not that.

Type /curse for more vengeance, or /game for other options.`
