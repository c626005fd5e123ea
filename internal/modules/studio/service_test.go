package studio

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
)

func TestGenerateEmail_ParsesJSON(t *testing.T) {
	mock := llm.NewMockClient(`{"subject":"Your prayer has been received","body":"Dear Dana...","cta_text":"Plant a tree","cta_link":"https://example.org/tree","voice_ratio":{"cardone":10,"hormozi":20,"buddhist":70}}`)
	svc := NewService(mock)

	gen, err := svc.GenerateEmail(context.Background(), prompts.EmailRequest{
		ContactName: "Dana",
		EmailType:   "prayer",
	})
	require.NoError(t, err)
	assert.False(t, gen.ParseError)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(gen.Data, &fields))
	assert.Equal(t, "Your prayer has been received", fields["subject"])

	call := mock.LastCall()
	assert.Equal(t, llm.ModelQuality, call.Model)
	assert.Equal(t, 2000, call.MaxTokens)
	assert.Contains(t, call.System, "Buddha Digital Temple")
}

func TestGenerateSocialPost_ShapeErrorRecovered(t *testing.T) {
	mock := llm.NewMockClient("Sorry, I wrote prose instead of JSON today.")
	svc := NewService(mock)

	gen, err := svc.GenerateSocialPost(context.Background(), prompts.SocialRequest{
		Pillar: "motivation", Platform: "facebook",
	})
	require.NoError(t, err, "malformed model output is recovered, not raised")
	assert.True(t, gen.ParseError)
	assert.Nil(t, gen.Data)
	assert.NotEmpty(t, gen.Raw)
}

func TestGenerateAdCopy_ArrayOutput(t *testing.T) {
	mock := llm.NewMockClient("```json\n[{\"headline\":\"A\"},{\"headline\":\"B\"},{\"headline\":\"C\"}]\n```")
	svc := NewService(mock)

	gen, err := svc.GenerateAdCopy(context.Background(), prompts.AdCopyRequest{
		Campaign: "trees", Audience: "seekers", Offer: "$27 tree", Angle: "aspiration",
	})
	require.NoError(t, err)

	var ads []map[string]string
	require.NoError(t, json.Unmarshal(gen.Data, &ads))
	assert.Len(t, ads, 3)
}

func TestGenerateVideoScript_RequiresTopic(t *testing.T) {
	mock := llm.NewMockClient("unused")
	svc := NewService(mock)

	_, err := svc.GenerateVideoScript(context.Background(), prompts.VideoScriptRequest{})
	require.ErrorIs(t, err, ErrTopicRequired)
	assert.Zero(t, mock.CallCount())
}

func TestGenerateMonthlyCalendar_FourWeeks(t *testing.T) {
	mock := llm.NewMockClient(`{"days":[{"day":"Monday","pillar":"MOTIVATION"}]}`)
	svc := NewService(mock)

	weeks, err := svc.GenerateMonthlyCalendar(context.Background(), "2026-09")
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, "2026-09-01", weeks[0].WeekStart)
	assert.Equal(t, "2026-09-08", weeks[1].WeekStart)
	assert.Equal(t, "2026-09-22", weeks[3].WeekStart)
	assert.Equal(t, 4, mock.CallCount())

	// Calendar generations get the largest studio ceiling.
	assert.Equal(t, 4000, mock.LastCall().MaxTokens)
}

func TestGenerateMonthlyCalendar_BadMonth(t *testing.T) {
	svc := NewService(llm.NewMockClient("unused"))
	_, err := svc.GenerateMonthlyCalendar(context.Background(), "September")
	assert.Error(t, err)
}
