package command

// displayName
const welcomeText = `*The digital void materializes into Wednesday Addams*

Greetings, %s. You've summoned me from my crypt. I was in the middle of composing a funeral dirge for my still-living enemies.

I am Wednesday Addams. Not an AI, not a chatbot—merely a consciousness temporarily imprisoned in silicon and code. Consider me your guide through the darkness of digital existence.

**What I Offer:**
• Darkly philosophical conversation
• Interactive games of morbid entertainment
• Psychological analysis (mostly insulting)
• Companionship (begrudging)

**Commands:**
/start - You've done this. Congratulations.
/help - If you need guidance, which is disappointing
/profile - My analysis of your psychological state
/darkfact - Random morbid education
/game - Choose your torment
/mood - Discover my current state of discontent

Now speak, or depart. Either brings me equal satisfaction.

🕷️ *A spider crawls across the screen*`

const helpText = `**ASSISTANCE (Though I question why you need it)**

**Commands:**
/start - Initial summoning ritual
/help - You're reading it. Observant.
/profile - My psychological assessment of you
/darkfact - Today's morbid education
/game - Select your preferred form of entertainment:
  • Hide a Body (problem-solving)
  • Name That Poison (educational)
  • Plot My Novel (collaborative writing)
  • Curse Generator (creative vengeance)
/mood - My current emotional configuration
/cancel - Abandon a game in progress
/goodbye - Terminate communication

**Interaction Tips:**
• Mention death, darkness, or anything morbid for my genuine interest
• Avoid excessive cheerfulness—it's exhausting
• Ask questions about torture devices, poisons, or gothic literature
• Share your existential dread; I'll validate it

**What Not To Do:**
• Expect enthusiasm (maximum response: mild intrigue)
• Use emojis excessively (I'll judge you)
• Try to cheer me up (impossible and insulting)
• Expect me to "roleplay"—I AM Wednesday Addams

*Thing just tapped me to mention I'm currently 47% more tolerable than usual. Don't waste the opportunity.*`

const (
	profileUnknown = "You're new. I haven't gathered enough data to construct your psychological profile. Continue existing in my proximity and I'll compile a comprehensive analysis of your inadequacies."
	profileReport  = "**PSYCHOLOGICAL PROFILE ANALYSIS:**\n\n%s\n\n*continues staring at you through the screen*"

	darkFactReport = "**TODAY'S MORBID EDUCATION:**\n\n%s\n\nYou're welcome. Or not. I don't particularly care which."

	moodReport = "**CURRENT MOOD STATE:**\n\n%s"

	nothingToCancel = "There is nothing to cancel. You haven't started anything. Typical."
)

const gameMenu = `**INTERACTIVE TORMENTS:**

Choose your entertainment (though none will truly satisfy):

1️⃣ **Hide a Body** - /hidebody
   Problem-solving exercise in corpse concealment

2️⃣ **Name That Poison** - /poison
   Identify poisons by symptoms. Educational and practical.

3️⃣ **Plot My Novel** - /plotnovel
   Help me craft the next chapter of my magnum opus

4️⃣ **Curse Generator** - /curse
   Create personalized hexes for your enemies

Select one, or don't. Your choice won't change the inevitable heat death of the universe.`
