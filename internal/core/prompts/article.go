package prompts

import (
	"fmt"

	"github.com/bdt-media/sales-engine/internal/core/registry"
)

// Article types accepted by the Writer's Engine.
const (
	ArticleNews        = "news"
	ArticleFeature     = "feature"
	ArticleProfile     = "profile"
	ArticleIndustrySEO = "industry-seo"
)

// ArticleRequest is one article generation call. Topic is the only hard
// requirement; every other field has a stated fallback so assembly never
// produces a malformed prompt.
type ArticleRequest struct {
	Publication string `json:"publication"`
	ArticleType string `json:"articleType"`
	Topic       string `json:"topic"`
	Angle       string `json:"angle"`
	Sources     string `json:"sources"`
	WordCount   string `json:"wordCount"`
	KeyFacts    string `json:"keyFacts"`
	ToneNote    string `json:"toneNote"`

	// industry-seo fields
	Industry          string `json:"industry"`
	TargetKeyword     string `json:"targetKeyword"`
	Audience          string `json:"audience"`
	ExpertPerspective string `json:"expertPerspective"`

	// profile fields
	Subject       string `json:"subject"`
	Scene         string `json:"scene"`
	Contradiction string `json:"contradiction"`
	Quotes        string `json:"quotes"`
	OtherVoices   string `json:"otherVoices"`

	UseFeatureModel bool `json:"useFeatureModel"`
}

// ArticleSystem concatenates the master craft prompt with the publication
// voice block. The order is significant: craft rules are general, the voice
// narrows them.
func ArticleSystem(voice registry.VoiceProfile) string {
	return MasterPrompt + "\n\n---\n\n" + voice.Config
}

// ArticleUser builds the user prompt for the request's article type. Unknown
// types fall through to the news template.
func ArticleUser(req ArticleRequest) string {
	switch req.ArticleType {
	case ArticleFeature:
		return fmt.Sprintf(`Write a feature article.

TOPIC: %s
ANGLE: %s
KEY SOURCES/QUOTES: %s
WORD COUNT: %s
KEY FACTS TO INCLUDE: %s
TONE NOTE: %s

Remember: Open with a scene. No cliches. Vary sentence rhythm. End with an image, not a summary.`,
			req.Topic,
			orElse(req.Angle, "What makes this story unlike any other?"),
			orElse(req.Sources, "Use plausible attributed sources"),
			orElse(req.WordCount, "1,500-2,000"),
			orElse(req.KeyFacts, "Research as appropriate"),
			orElse(req.ToneNote, "Follow publication voice"))

	case ArticleProfile:
		return fmt.Sprintf(`Write a profile piece.

SUBJECT: %s
THE SCENE: %s
THE CONTRADICTION: %s
KEY BIOGRAPHICAL MOMENTS: %s
QUOTES: %s
OTHER VOICES: %s
WORD COUNT: %s
TONE: %s`,
			orElse(req.Subject, req.Topic),
			orElse(req.Scene, "Create an evocative opening scene"),
			orElse(req.Contradiction, "Find the surprising dimension of this person"),
			orElse(req.KeyFacts, "Weave in relevant moments"),
			orElse(req.Quotes, "Create plausible attributed quotes"),
			orElse(req.OtherVoices, "Include reactions from colleagues or critics"),
			orElse(req.WordCount, "1,800-2,500"),
			orElse(req.ToneNote, "Follow publication voice"))

	case ArticleIndustrySEO:
		return fmt.Sprintf(`Write an industry article.

INDUSTRY: %s
TOPIC: %s
TARGET KEYWORD: %s
AUDIENCE: %s
KEY DATA POINTS: %s
EXPERT PERSPECTIVE: %s
WORD COUNT: %s
ACTION ITEM: What should the reader do after reading this?`,
			orElse(req.Industry, "General Business"),
			req.Topic,
			orElse(req.TargetKeyword, req.Topic),
			orElse(req.Audience, "Industry professionals"),
			orElse(req.KeyFacts, "Include relevant market data and trends"),
			orElse(req.ExpertPerspective, "Include an attributed expert viewpoint"),
			orElse(req.WordCount, "600-900"))

	default:
		return fmt.Sprintf(`Write a news article.

HEADLINE EVENT: %s
WHY IT MATTERS: %s
KEY FACTS: %s
QUOTES: %s
CONTEXT: %s
WHAT'S NEXT: What should readers watch for?
WORD COUNT: %s`,
			req.Topic,
			orElse(req.Angle, "Explain the significance clearly"),
			orElse(req.KeyFacts, "Include relevant names, numbers, dates, locations"),
			orElse(req.Sources, "Include 2-3 attributed quotes"),
			orElse(req.ToneNote, "Provide necessary background"),
			orElse(req.WordCount, "600-900"))
	}
}

// QualityCheckPrompt wraps an article in the senior-editor QC checklist. The
// article is truncated to keep the evaluation call cheap.
func QualityCheckPrompt(article string) string {
	const limit = 3000
	if len(article) > limit {
		article = article[:limit]
	}
	return fmt.Sprintf(`You are a senior editor. Run this quality control checklist on the following article. Return a JSON object with these exact fields:

{
  "opensWith": "scene|summary|other",
  "hasBannedPhrases": ["list any found"],
  "sentenceVariety": "good|poor",
  "hasSpecifics": true|false,
  "quotesEarned": true|false,
  "shortParagraphs": true|false,
  "endingStyle": "scene|summary|quote|image",
  "humanQuality": "excellent|good|poor",
  "hasEEAT": true|false,
  "wordCount": number,
  "overallScore": 1-10,
  "pass": true|false,
  "notes": "brief editor notes"
}

ARTICLE TO EVALUATE:
%s`, article)
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
