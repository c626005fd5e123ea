// Package writers is the Writer's Engine: editorial article generation for
// the BDT publications, plus the AI editor quality-control pass.
package writers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
	"github.com/bdt-media/sales-engine/internal/core/registry"
	"github.com/bdt-media/sales-engine/internal/core/textparse"
)

// ErrTopicRequired is returned when an article request has no topic. The
// caller must reject with a 400 before any LLM call happens.
var ErrTopicRequired = errors.New("topic is required")

// ErrArticleRequired is returned when a quality check has no article text.
var ErrArticleRequired = errors.New("article is required")

// ArticleResult is one finished article with its derived metadata.
type ArticleResult struct {
	Article      string    `json:"article"`
	Title        string    `json:"title"`
	Publication  string    `json:"publication"`
	Model        string    `json:"model"`
	ArticleType  string    `json:"articleType"`
	WordEstimate int       `json:"wordEstimate"`
	Usage        llm.Usage `json:"usage"`
}

// QualityCheck is the fixed-shape editor verdict.
type QualityCheck struct {
	OpensWith        string   `json:"opensWith"`
	HasBannedPhrases []string `json:"hasBannedPhrases"`
	SentenceVariety  string   `json:"sentenceVariety"`
	HasSpecifics     bool     `json:"hasSpecifics"`
	QuotesEarned     bool     `json:"quotesEarned"`
	ShortParagraphs  bool     `json:"shortParagraphs"`
	EndingStyle      string   `json:"endingStyle"`
	HumanQuality     string   `json:"humanQuality"`
	HasEEAT          bool     `json:"hasEEAT"`
	WordCount        int      `json:"wordCount"`
	OverallScore     int      `json:"overallScore"`
	Pass             bool     `json:"pass"`
	Notes            string   `json:"notes"`
}

// QualityCheckResult carries either the parsed verdict or, when the model
// output did not parse, the raw text with a parseError marker. A shape error
// is recovered locally, never surfaced as a failure.
type QualityCheckResult struct {
	Check      *QualityCheck `json:"qualityCheck,omitempty"`
	Raw        string        `json:"raw,omitempty"`
	ParseError bool          `json:"parseError,omitempty"`
}

type Service struct {
	llm llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{llm: client}
}

// SelectModel picks the model tier for an article. The force-quality flag
// always wins; editorial types (feature, profile) get the quality tier,
// bulk types run on the publication's fast-tier model.
func SelectModel(articleType string, forceQuality bool, voice registry.VoiceProfile) string {
	if forceQuality {
		return llm.ModelQuality
	}
	switch articleType {
	case prompts.ArticleFeature, prompts.ArticleProfile:
		return llm.ModelQuality
	default:
		return voice.Model
	}
}

// TokenCeiling returns the fixed max-output-token budget for an article
// type. Ceilings are safety bounds against runaway generation cost and are
// never tuned per request.
func TokenCeiling(articleType string) int {
	switch articleType {
	case prompts.ArticleIndustrySEO:
		return 1200
	case prompts.ArticleNews:
		return 1500
	case prompts.ArticleFeature:
		return 3000
	case prompts.ArticleProfile:
		return 3000
	default:
		return 2000
	}
}

// GenerateArticle assembles the prompt pair for the request, invokes the
// LLM once, and shapes the result. A provider failure surfaces as a single
// error; there is no retry.
func (s *Service) GenerateArticle(ctx context.Context, req prompts.ArticleRequest) (*ArticleResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrTopicRequired
	}
	if req.ArticleType == "" {
		req.ArticleType = prompts.ArticleNews
	}

	voice := registry.LookupVoice(req.Publication)
	model := SelectModel(req.ArticleType, req.UseFeatureModel, voice)

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:       model,
		MaxTokens:   TokenCeiling(req.ArticleType),
		System:      prompts.ArticleSystem(voice),
		User:        prompts.ArticleUser(req),
		CacheSystem: true,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("publication", voice.ID).
		Str("articleType", req.ArticleType).
		Str("model", model).
		Int64("outputTokens", res.Usage.OutputTokens).
		Msg("article generated")

	return &ArticleResult{
		Article:      res.Text,
		Title:        textparse.Headline(res.Text),
		Publication:  voice.Name,
		Model:        model,
		ArticleType:  req.ArticleType,
		WordEstimate: textparse.WordEstimate(res.Text),
		Usage:        res.Usage,
	}, nil
}

// RunQualityCheck evaluates an article with the fast-tier model. The eval is
// cheap and always runs on the fast tier.
func (s *Service) RunQualityCheck(ctx context.Context, article string) (*QualityCheckResult, error) {
	if strings.TrimSpace(article) == "" {
		return nil, ErrArticleRequired
	}

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelFast,
		MaxTokens: 500,
		User:      prompts.QualityCheckPrompt(article),
	})
	if err != nil {
		return nil, err
	}

	raw, ok := textparse.ExtractJSON(res.Text)
	if !ok {
		return &QualityCheckResult{Raw: res.Text, ParseError: true}, nil
	}
	var check QualityCheck
	if err := json.Unmarshal(raw, &check); err != nil {
		return &QualityCheckResult{Raw: res.Text, ParseError: true}, nil
	}
	return &QualityCheckResult{Check: &check}, nil
}

// PublicationInfo is one entry of the publication listing.
type PublicationInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	ArticleTypes []string `json:"articleTypes"`
}

// ListPublications returns every configured voice profile with its default
// model tier.
func (s *Service) ListPublications() []PublicationInfo {
	pubs := registry.Publications()
	out := make([]PublicationInfo, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, PublicationInfo{
			ID:    p.ID,
			Name:  p.Name,
			Model: p.Model,
			ArticleTypes: []string{
				prompts.ArticleNews, prompts.ArticleFeature,
				prompts.ArticleProfile, prompts.ArticleIndustrySEO,
			},
		})
	}
	return out
}
