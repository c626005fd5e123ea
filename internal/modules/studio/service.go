// Package studio generates sales content (emails, social posts, ad copy,
// video scripts, design briefs, content calendars) in the BDT sales voice.
// Every prompt demands JSON; malformed model output is recovered as raw text
// with a parseError marker, never an error.
package studio

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
	"github.com/bdt-media/sales-engine/internal/core/textparse"
)

// ErrTopicRequired is returned when a video script request has no topic.
var ErrTopicRequired = errors.New("topic is required")

// Generation is one shaped studio result: parsed JSON when the model
// complied, raw text with ParseError otherwise.
type Generation struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Raw        string          `json:"raw,omitempty"`
	ParseError bool            `json:"parseError,omitempty"`
	Usage      llm.Usage       `json:"usage"`
}

// WeekCalendar is one generated week of a monthly calendar.
type WeekCalendar struct {
	Week      int    `json:"week"`
	WeekStart string `json:"weekStart"`
	Generation
}

type Service struct {
	llm llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{llm: client}
}

func (s *Service) GenerateEmail(ctx context.Context, req prompts.EmailRequest) (*Generation, error) {
	return s.generate(ctx, prompts.EmailPrompt(req), 2000)
}

func (s *Service) GenerateSocialPost(ctx context.Context, req prompts.SocialRequest) (*Generation, error) {
	return s.generate(ctx, prompts.SocialPrompt(req), 1500)
}

func (s *Service) GenerateAdCopy(ctx context.Context, req prompts.AdCopyRequest) (*Generation, error) {
	return s.generate(ctx, prompts.AdCopyPrompt(req), 2000)
}

func (s *Service) GenerateVideoScript(ctx context.Context, req prompts.VideoScriptRequest) (*Generation, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrTopicRequired
	}
	return s.generate(ctx, prompts.VideoScriptPrompt(req), 2000)
}

func (s *Service) GenerateCanvaBrief(ctx context.Context, req prompts.CanvaBriefRequest) (*Generation, error) {
	return s.generate(ctx, prompts.CanvaBriefPrompt(req), 1000)
}

func (s *Service) GenerateWeeklyCalendar(ctx context.Context, weekStart string) (*Generation, error) {
	if weekStart == "" {
		weekStart = time.Now().Format("2006-01-02")
	}
	return s.generate(ctx, prompts.WeeklyCalendarPrompt(weekStart), 4000)
}

// GenerateMonthlyCalendar produces four consecutive weekly calendars
// starting at the first of the month. Weeks are generated sequentially; one
// failed week fails the call since a partial month is not a useful result.
func (s *Service) GenerateMonthlyCalendar(ctx context.Context, month string) ([]WeekCalendar, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	start, err := time.Parse("2006-01-02", month+"-01")
	if err != nil {
		return nil, errors.New("month must be formatted YYYY-MM")
	}

	weeks := make([]WeekCalendar, 0, 4)
	for i := 0; i < 4; i++ {
		weekStart := start.AddDate(0, 0, i*7).Format("2006-01-02")
		gen, err := s.GenerateWeeklyCalendar(ctx, weekStart)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, WeekCalendar{Week: i + 1, WeekStart: weekStart, Generation: *gen})
	}
	return weeks, nil
}

func (s *Service) generate(ctx context.Context, userPrompt string, maxTokens int) (*Generation, error) {
	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelQuality,
		MaxTokens: maxTokens,
		System:    prompts.SalesSystemPrompt,
		User:      userPrompt,
	})
	if err != nil {
		return nil, err
	}

	data, ok := textparse.ExtractJSON(res.Text)
	if !ok {
		return &Generation{Raw: res.Text, ParseError: true, Usage: res.Usage}, nil
	}
	return &Generation{Data: data, Usage: res.Usage}, nil
}
