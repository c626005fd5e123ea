// Package registry holds the static publication, brand, and pricing-tier
// configuration. Everything here is loaded once and never mutated; lookups
// are total functions so a caller-supplied identifier can never crash the
// pipeline.
package registry

import "github.com/bdt-media/sales-engine/internal/core/llm"

// VoiceProfile describes one publication's editorial voice for the Writer's
// Engine. Model is the default (fast-tier) model; the dispatcher upgrades to
// the quality tier per article type.
type VoiceProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Model  string `json:"model"`
	Config string `json:"-"`
}

// DefaultPublication is the fallback when an unknown publication id comes in.
const DefaultPublication = "wiki-news"

var voiceProfiles = map[string]VoiceProfile{
	"wiki-news": {
		ID:    "wiki-news",
		Name:  "Wiki News Network",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Wiki News Network (200+ newspapers)
VOICE: Authoritative daily journalism. Think Associated Press meets Bloomberg. Clean, direct, factual with enough narrative flair to keep readers engaged. Every story answers: What happened? Why does it matter? What happens next?
TONE: Confident, informed, civic-minded.
WORD COUNT: 500-900 words for daily news. 1,200-1,800 for features.
SPECIAL RULES: Always include at least one local angle or community impact. Include at least 2-3 quotes per story. Date and location in the dateline.`,
	},
	"smart-money": {
		ID:    "smart-money",
		Name:  "Smart Money Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Smart Money Magazine
VOICE: Bloomberg meets Black Enterprise. Sophisticated financial journalism for entrepreneurs and investors building generational wealth.
TONE: Sharp, knowing, occasionally irreverent.
WORD COUNT: 800-2,000 words.
SPECIAL RULES: Always include actionable intelligence — numbers, strategies, or frameworks readers can use. Reference real market data. Write for someone who already knows what an ETF is.`,
	},
	"gourmet": {
		ID:    "gourmet",
		Name:  "Gourmet Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Gourmet Magazine
VOICE: The New Yorker meets Bon Appetit at its peak. Literate food writing that treats cuisine as culture, not content.
TONE: Sensual, precise, curious.
WORD COUNT: 800-2,500 words.
SPECIAL RULES: Engage at least three senses in every piece. Name specific ingredients, techniques, and traditions. Never use "yummy," "delicious," or "mouth-watering." Food writing is about place, people, and memory as much as flavor.`,
	},
	"ladies-home": {
		ID:    "ladies-home",
		Name:  "Ladies' Home Journal",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Ladies' Home Journal
VOICE: Modern, authoritative lifestyle journalism. Think The Cut meets Real Simple. Smart women talking to smart women.
TONE: Warm but direct. Like your most accomplished friend who gives you the real answer.
WORD COUNT: 600-1,800 words.
SPECIAL RULES: Lead with utility. Include expert sources by name and credential. Write for women who run households AND boardrooms.`,
	},
	"blender": {
		ID:    "blender",
		Name:  "Blender Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Blender Magazine
VOICE: Rolling Stone meets Complex meets Pitchfork. Music journalism that understands artists as business operators, cultural forces, and human beings.
TONE: Culturally fluent, opinionated, alive.
WORD COUNT: 600-2,500 words.
SPECIAL RULES: Reference specific songs, albums, and cultural moments. Connect music to larger social movements. Include industry context. Never write a puff piece.`,
	},
	"modern-bride": {
		ID:    "modern-bride",
		Name:  "Modern Bride Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Modern Bride Magazine
VOICE: Vogue Weddings meets The Knot editorial at its most sophisticated. Aspirational but grounded.
TONE: Elegant, practical, inclusive.
WORD COUNT: 500-1,500 words.
SPECIAL RULES: Include specific price ranges and vendor context. Feature diverse couples and traditions. Avoid fairy-tale cliches.`,
	},
	"family-circle": {
		ID:    "family-circle",
		Name:  "Family Circle Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Family Circle Magazine
VOICE: Real Simple meets The Atlantic's family coverage. Smart, evidence-based family journalism.
TONE: Supportive without being saccharine. Like a pediatrician who also happens to be funny.
WORD COUNT: 500-1,500 words.
SPECIAL RULES: Cite actual research. Include age-specific guidance. Acknowledge that families come in every configuration.`,
	},
	"teen-people": {
		ID:    "teen-people",
		Name:  "Teen People Magazine",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Teen People Magazine
VOICE: Teen Vogue at its most culturally relevant. Smart youth journalism that treats young readers as informed, aware, sophisticated.
TONE: Energetic, genuine, current.
WORD COUNT: 400-1,200 words.
SPECIAL RULES: Stay current with platform culture (TikTok, YouTube, Discord, gaming). Cover mental health, identity, activism, and career alongside entertainment. Never be cringe.`,
	},
	"buddha-tv": {
		ID:    "buddha-tv",
		Name:  "Buddha TV / BDT Media",
		Model: llm.ModelFast,
		Config: `PUBLICATION: Buddha TV / Buddha Digital Temple Media
VOICE: Spirituality meets 60 Minutes. Serious, respectful coverage of spiritual practices, interfaith dialogue, and consciousness research.
TONE: Reverent but journalistic. Reporting on one of the most important dimensions of human experience.
WORD COUNT: 800-2,000 words.
SPECIAL RULES: Include historical and cross-tradition context. Name specific lineages, practices, and teachers. Never reduce spiritual traditions to self-help content.`,
	},
	"industry": {
		ID:    "industry",
		Name:  "BDT Industry Publications",
		Model: llm.ModelFast,
		Config: `PUBLICATION: BDT Industry Publications (3,000 verticals)
VOICE: Trade journal meets Harvard Business Review. Authoritative B2B journalism.
TONE: Expert, direct, insider.
WORD COUNT: 400-1,200 words.
SPECIAL RULES: Lead with the industry-specific insight or data point. Use sector terminology correctly. Include market data or trend analysis. Every article should make the reader feel smarter about their own business.`,
	},
}

// LookupVoice returns the profile for id, or the wiki-news default when id
// is unknown or empty. Never fails.
func LookupVoice(id string) VoiceProfile {
	if p, ok := voiceProfiles[id]; ok {
		return p
	}
	return voiceProfiles[DefaultPublication]
}

// KnownPublication reports whether id is an exact configured publication.
func KnownPublication(id string) bool {
	_, ok := voiceProfiles[id]
	return ok
}

// Publications returns all configured voice profiles in a stable order.
func Publications() []VoiceProfile {
	ids := []string{
		"wiki-news", "smart-money", "gourmet", "ladies-home", "blender",
		"modern-bride", "family-circle", "teen-people", "buddha-tv", "industry",
	}
	out := make([]VoiceProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, voiceProfiles[id])
	}
	return out
}
