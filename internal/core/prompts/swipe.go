package prompts

// SwipeFile holds proven hooks and subject lines, served verbatim to content
// operators via GET /swipe-file.
var SwipeFile = map[string][]string{
	"prayer_spiritual_hooks": {
		"Your prayer has been spoken aloud in our meditation hall",
		"The Buddha didn't pray to a god. He did something better.",
		"What happens when 1,000 people pray for you at once?",
		"I stopped praying for things and started praying for THIS",
		"The prayer that changed everything for me",
		"You asked for help. We heard you.",
		"A sacred tree was planted in your name today",
		"The Medicine Buddha spoke your name this morning",
	},
	"sales_cardone_hooks": {
		"Stop meditating 5 minutes and complaining it doesn't work",
		"Your spiritual practice is broke and you know it",
		"Everyone wants enlightenment. Nobody wants the work.",
		"I lost everything — $500M, my reputation, my family. Then I found THIS.",
		"The difference between a healer and a broke healer? A credential.",
		"Your calling is too important to stay amateur",
		"You didn't come this far to only come this far",
		"Stop being a spiritual dabbler and become a practitioner",
	},
	"value_stack_hormozi_hooks": {
		"Here's what $7,500 actually gets you (hint: it's worth $150K)",
		"The real cost of NOT getting your Spiritual MBA",
		"3 years of therapy = $15,000. This program = $5,000. The difference = everything.",
		"$54 book. $5,400 worth of healing protocols inside.",
		"$27 plants a tree. But here's what else happens...",
		"Free consultation worth $500. Why? Because we know what happens next.",
		"Your MBA pays for itself when you land ONE consulting client",
		"Price anchor: what you've already spent searching for this answer",
	},
	"subject_lines_prayer": {
		"Your prayer has been received 🙏",
		"A Buddhist prayer written just for you",
		"Something sacred happened today",
		"We spoke your name in meditation this morning",
		"Your 30-day renewal blessing is ready",
	},
	"subject_lines_offer": {
		"Your sacred tree is waiting 🌳",
		"Plant a tree for someone you love",
		"3 trees. 3 prayers. One sacred bundle.",
		"The Medicine Buddha's prescription for you",
		"Your calling deserves a credential, not just a feeling",
		"The Spiritual MBA: what $7,500 really buys",
	},
	"subject_lines_followup": {
		"Did our prayer reach you?",
		"You were in our meditation this morning",
		"One more thing about your prayer request",
		"Your tree is still waiting",
		"A story about someone just like you",
	},
}
