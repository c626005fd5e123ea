package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
	"github.com/bdt-media/sales-engine/internal/core/registry"
	"github.com/bdt-media/sales-engine/internal/modules/smm"
)

// Eligible reports whether a contact qualifies for magazine outreach:
// not yet contacted, prayer email sent at least seven days ago, and a brand
// assignment present. A missing or unparseable prayer date is ineligible.
func Eligible(c crm.Contact, now time.Time) bool {
	if c.HasTag("smm-contacted") {
		return false
	}
	if c.Field("contact.brand_tag") == "" {
		return false
	}
	raw := c.Field("contact.prayer_sent_date")
	if raw == "" {
		return false
	}
	sent, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return false
	}
	return !sent.After(now.AddDate(0, 0, -7))
}

// RunOutreachBatch lists lead contacts, filters to the eligible set, and
// sends magazine outreach to at most outreachBatchCap of them. Sends run
// sequentially with a fixed delay; a failed candidate is logged and skipped.
func (s *Scheduler) RunOutreachBatch(ctx context.Context) {
	runID := uuid.NewString()
	logger := log.With().Str("runId", runID).Str("job", "magazine-outreach").Logger()
	logger.Info().Msg("outreach batch started")

	contacts, err := s.crm.ListContacts(ctx, "bdt-lead", outreachListLimit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list lead contacts")
		return
	}

	now := s.now()
	eligible := make([]crm.Contact, 0, len(contacts))
	for _, c := range contacts {
		if Eligible(c, now) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) > outreachBatchCap {
		eligible = eligible[:outreachBatchCap]
	}
	logger.Info().Int("eligible", len(eligible)).Msg("contacts eligible for magazine outreach")

	sent := 0
	for i, contact := range eligible {
		if i > 0 {
			s.sleep(2 * time.Second)
		}

		name := contact.CompanyName
		if name == "" {
			name = contact.Name
		}
		businessType := contact.Field("contact.business_type")
		if businessType == "" {
			businessType = "Business"
		}
		brandTag := contact.Field("contact.brand_tag")
		if brandTag == "" {
			brandTag = registry.DefaultBrand
		}

		_, err := s.smm.SendOutreach(ctx, smm.OutreachRequest{
			ContactID:     contact.ID,
			BusinessName:  name,
			BusinessCity:  contact.City,
			BusinessState: contact.State,
			BusinessType:  businessType,
			BrandTag:      brandTag,
		})
		if err != nil {
			logger.Error().Err(err).Str("contactId", contact.ID).Msg("outreach send failed, skipping contact")
			continue
		}
		sent++
	}

	logger.Info().Int("sent", sent).Msg("outreach batch complete")
}

// RunContentEngine generates one news article per brand publication and
// announces each on the content webhook. A failed brand is logged and the
// run continues.
func (s *Scheduler) RunContentEngine(ctx context.Context) {
	runID := uuid.NewString()
	logger := log.With().Str("runId", runID).Str("job", "content-engine").Logger()
	logger.Info().Msg("content engine started")

	for i, brand := range contentBrands {
		if i > 0 {
			s.sleep(5 * time.Second)
		}

		result, err := s.writers.GenerateArticle(ctx, prompts.ArticleRequest{
			Publication: brand,
			ArticleType: prompts.ArticleNews,
			Topic:       fmt.Sprintf("Latest trends and insights for %s readers", brand),
			WordCount:   "600-800",
		})
		if err != nil {
			logger.Error().Err(err).Str("brand", brand).Msg("article generation failed, skipping brand")
			continue
		}

		logger.Info().Str("brand", brand).Str("title", result.Title).Msg("article generated")
		s.notifier.Notify(s.cfg.DiscordSMMContentWebhook, fmt.Sprintf(
			"📰 **Article Generated: %s**\n📖 Brand: %s\n📊 Words: ~%d",
			result.Title, brand, result.WordEstimate))
	}

	logger.Info().Msg("content engine complete")
}

// RunDailyReport posts the daily operations summary.
func (s *Scheduler) RunDailyReport() {
	log.Info().Str("job", "daily-report").Msg("posting daily report")
	s.smm.DailyReport(s.now())
}
