package writers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
	"github.com/bdt-media/sales-engine/internal/core/registry"
)

func TestSelectModel(t *testing.T) {
	wiki := registry.LookupVoice("wiki-news")
	industry := registry.LookupVoice("industry")

	// Bulk types run on the publication's fast tier.
	assert.Equal(t, llm.ModelFast, SelectModel(prompts.ArticleNews, false, wiki))
	assert.Equal(t, llm.ModelFast, SelectModel(prompts.ArticleIndustrySEO, false, industry))

	// Editorial types get the quality tier.
	assert.Equal(t, llm.ModelQuality, SelectModel(prompts.ArticleFeature, false, wiki))
	assert.Equal(t, llm.ModelQuality, SelectModel(prompts.ArticleProfile, false, wiki))

	// The force flag always wins.
	assert.Equal(t, llm.ModelQuality, SelectModel(prompts.ArticleNews, true, wiki))
	assert.Equal(t, llm.ModelQuality, SelectModel(prompts.ArticleIndustrySEO, true, industry))
}

func TestTokenCeiling_CoversMaxWordTargets(t *testing.T) {
	// Max word targets from the default prompt templates. The ceiling must
	// exceed ~1.2 tokens/word so the configured target is never truncated.
	targets := map[string]int{
		prompts.ArticleNews:        900,
		prompts.ArticleFeature:     2000,
		prompts.ArticleProfile:     2500,
		prompts.ArticleIndustrySEO: 900,
	}
	for articleType, words := range targets {
		ceiling := TokenCeiling(articleType)
		assert.GreaterOrEqual(t, float64(ceiling), float64(words)*1.2,
			"ceiling for %s truncates its word target", articleType)
	}
	assert.Equal(t, 2000, TokenCeiling("unknown-type"))
}

func TestGenerateArticle_MissingTopicSkipsLLM(t *testing.T) {
	mock := llm.NewMockClient("should never be used")
	svc := NewService(mock)

	_, err := svc.GenerateArticle(context.Background(), prompts.ArticleRequest{Publication: "gourmet"})
	require.ErrorIs(t, err, ErrTopicRequired)
	assert.Zero(t, mock.CallCount(), "no LLM call may happen for an invalid request")
}

func TestGenerateArticle_WikiNewsScenario(t *testing.T) {
	article := "# Downtown Bakery Doubles Down\n\n" + strings.Repeat("word ", 650)
	mock := llm.NewMockClient(article)
	svc := NewService(mock)

	result, err := svc.GenerateArticle(context.Background(), prompts.ArticleRequest{
		Publication: "wiki-news",
		ArticleType: "news",
		Topic:       "Downtown bakery expansion",
	})
	require.NoError(t, err)

	assert.Equal(t, llm.ModelFast, result.Model)
	assert.Equal(t, "Wiki News Network", result.Publication)
	assert.Equal(t, "Downtown Bakery Doubles Down", result.Title)
	assert.NotEmpty(t, result.Article)
	assert.InDelta(t, 650, result.WordEstimate, 160)

	call := mock.LastCall()
	assert.Equal(t, 1500, call.MaxTokens)
	assert.True(t, call.CacheSystem)
	assert.Contains(t, call.System, "CORE WRITING PRINCIPLES")
	assert.Contains(t, call.System, "PUBLICATION: Wiki News Network")
	assert.Contains(t, call.User, "HEADLINE EVENT: Downtown bakery expansion")
}

func TestGenerateArticle_UnknownPublicationFallsBack(t *testing.T) {
	mock := llm.NewMockClient("Title\n\nBody")
	svc := NewService(mock)

	result, err := svc.GenerateArticle(context.Background(), prompts.ArticleRequest{
		Publication: "does-not-exist",
		Topic:       "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, "Wiki News Network", result.Publication)
	assert.Equal(t, prompts.ArticleNews, result.ArticleType)
}

func TestRunQualityCheck_ParsesVerdict(t *testing.T) {
	verdict := `Here is the verdict:
{"opensWith":"scene","hasBannedPhrases":[],"sentenceVariety":"good","hasSpecifics":true,"quotesEarned":true,"shortParagraphs":true,"endingStyle":"quote","humanQuality":"good","hasEEAT":true,"wordCount":820,"overallScore":8,"pass":true,"notes":"solid"}`
	mock := llm.NewMockClient(verdict)
	svc := NewService(mock)

	result, err := svc.RunQualityCheck(context.Background(), "Some article text")
	require.NoError(t, err)
	require.NotNil(t, result.Check)
	assert.False(t, result.ParseError)
	assert.Equal(t, 8, result.Check.OverallScore)
	assert.True(t, result.Check.Pass)

	// QC always runs on the fast tier with a tight ceiling.
	call := mock.LastCall()
	assert.Equal(t, llm.ModelFast, call.Model)
	assert.Equal(t, 500, call.MaxTokens)
}

func TestRunQualityCheck_ShapeErrorIsRecovered(t *testing.T) {
	mock := llm.NewMockClient("The article is fine, trust me.")
	svc := NewService(mock)

	result, err := svc.RunQualityCheck(context.Background(), "Some article text")
	require.NoError(t, err, "a shape error must never surface as a failure")
	assert.True(t, result.ParseError)
	assert.Nil(t, result.Check)
	assert.Equal(t, "The article is fine, trust me.", result.Raw)
}

func TestRunQualityCheck_MissingArticle(t *testing.T) {
	mock := llm.NewMockClient("unused")
	svc := NewService(mock)

	_, err := svc.RunQualityCheck(context.Background(), "  ")
	require.ErrorIs(t, err, ErrArticleRequired)
	assert.Zero(t, mock.CallCount())
}

func TestListPublications(t *testing.T) {
	svc := NewService(llm.NewMockClient(""))
	pubs := svc.ListPublications()
	require.Len(t, pubs, 10)
	assert.Equal(t, "wiki-news", pubs[0].ID)
	for _, p := range pubs {
		assert.NotEmpty(t, p.Model)
		assert.Len(t, p.ArticleTypes, 4)
	}
}
