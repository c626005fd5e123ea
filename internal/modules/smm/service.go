// Package smm runs the magazine outreach pipeline: personalized outreach
// emails, reply classification with routed notifications, paid-feature
// fulfillment, and the daily operations report.
package smm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/core/registry"
	"github.com/bdt-media/sales-engine/internal/core/textparse"
	"github.com/bdt-media/sales-engine/internal/shared/config"
)

var (
	ErrReplyTextRequired = errors.New("replyText is required")
	ErrNoContactEmail    = errors.New("no email for contact")
)

type Service struct {
	llm      llm.Client
	crm      crm.API
	notifier notify.Notifier
	cfg      config.Config
}

func NewService(client llm.Client, crmAPI crm.API, notifier notify.Notifier, cfg config.Config) *Service {
	return &Service{llm: client, crm: crmAPI, notifier: notifier, cfg: cfg}
}

// OutreachRequest identifies the business and brand for one outreach send.
type OutreachRequest struct {
	ContactID     string `json:"contactId"`
	BusinessName  string `json:"businessName"`
	BusinessCity  string `json:"businessCity"`
	BusinessState string `json:"businessState"`
	BusinessType  string `json:"businessType"`
	BrandTag      string `json:"brandTag"`
}

// OutreachResult reports a completed outreach send.
type OutreachResult struct {
	EmailSent bool   `json:"emailSent"`
	Brand     string `json:"brand"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// SendOutreach generates a brand-voiced outreach email, delivers it through
// the CRM, tags the contact as contacted, and announces the send.
func (s *Service) SendOutreach(ctx context.Context, req OutreachRequest) (*OutreachResult, error) {
	brand := registry.LookupBrand(req.BrandTag)

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelFast,
		MaxTokens: 600,
		System:    outreachSystem(brand),
		User:      outreachUser(req, brand),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate outreach email: %w", err)
	}

	subject, body := textparse.ExtractSubject(res.Text)
	if subject == "" {
		subject = fmt.Sprintf("%s — %s Editorial Consideration", req.BusinessName, brand.Name)
	}

	contact, err := s.crm.GetContact(ctx, req.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	if contact.Email == "" {
		return nil, ErrNoContactEmail
	}

	err = s.crm.SendEmail(ctx, crm.EmailMessage{
		ContactID: req.ContactID,
		From:      brand.Email,
		To:        contact.Email,
		Subject:   subject,
		HTML:      textparse.ParagraphsHTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send outreach email: %w", err)
	}

	if err := s.crm.AddTags(ctx, req.ContactID, []string{"smm-contacted", req.BrandTag}); err != nil {
		return nil, fmt.Errorf("failed to tag contact: %w", err)
	}

	s.notifier.Notify(s.cfg.DiscordSMMLeadsWebhook, fmt.Sprintf(
		"📧 **Magazine Outreach Sent**\n🏢 %s, %s %s\n📰 Brand: %s\n✉️ From: %s",
		req.BusinessName, req.BusinessCity, req.BusinessState, brand.Name, brand.Email))

	log.Info().
		Str("contactId", req.ContactID).
		Str("brand", brand.ID).
		Str("to", contact.Email).
		Msg("magazine outreach sent")

	return &OutreachResult{EmailSent: true, Brand: brand.Name, To: contact.Email, Subject: subject}, nil
}

// ClassifyRequest carries an inbound reply for classification.
type ClassifyRequest struct {
	ReplyText    string `json:"replyText"`
	ContactID    string `json:"contactId"`
	BusinessName string `json:"businessName"`
	BrandTag     string `json:"brandTag"`
}

// ClassifyResult reports the assigned category and any follow-up taken.
type ClassifyResult struct {
	Category  Category `json:"category"`
	ContactID string   `json:"contactId"`
	Brand     string   `json:"brand"`
	OfferSent bool     `json:"offerSent"`
}

// ClassifyReply assigns a category to an inbound reply and routes it:
// interested replies get the checkout email, angry replies escalate, and
// every reply produces exactly one team notification.
func (s *Service) ClassifyReply(ctx context.Context, req ClassifyRequest) (*ClassifyResult, error) {
	if strings.TrimSpace(req.ReplyText) == "" {
		return nil, ErrReplyTextRequired
	}

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelFast,
		MaxTokens: 50,
		User:      classifyPrompt(req.ReplyText),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to classify reply: %w", err)
	}

	category := ParseCategory(res.Text)
	brand := registry.LookupBrand(req.BrandTag)

	webhook := s.cfg.DiscordSMMRepliesWebhook
	offerSent := false

	switch category {
	case CategoryInterested:
		offerSent = s.sendCheckoutOffer(ctx, req, brand)
	case CategoryAngry:
		webhook = s.cfg.DiscordSMMEscalationsWebhook
	}

	s.notifier.Notify(webhook, fmt.Sprintf(
		"%s **SMM Reply: %s**\n🏢 %s\n📰 %s\n💬 \"%s\"",
		category.Emoji(), category, req.BusinessName, brand.Name, truncate(req.ReplyText, 150)))

	log.Info().
		Str("contactId", req.ContactID).
		Str("category", string(category)).
		Bool("offerSent", offerSent).
		Msg("smm reply classified")

	return &ClassifyResult{Category: category, ContactID: req.ContactID, Brand: brand.Name, OfferSent: offerSent}, nil
}

// sendCheckoutOffer delivers the payment link to an interested contact. The
// offer is opportunistic: a missing link, contact, or email address skips the
// send without failing the classification.
func (s *Service) sendCheckoutOffer(ctx context.Context, req ClassifyRequest, brand registry.BrandVoice) bool {
	link := s.cfg.FeaturedLink(req.BrandTag)
	if link == "" || req.ContactID == "" {
		log.Warn().Str("contactId", req.ContactID).Str("brand", brand.ID).
			Msg("interested reply without payment link or contact, offer skipped")
		return false
	}

	contact, err := s.crm.GetContact(ctx, req.ContactID)
	if err != nil {
		log.Error().Err(err).Str("contactId", req.ContactID).Msg("checkout offer: contact lookup failed")
		return false
	}
	if contact.Email == "" {
		log.Warn().Str("contactId", req.ContactID).Msg("checkout offer: contact has no email")
		return false
	}

	html := fmt.Sprintf(
		`<p>Thank you for your interest! We'd love to feature %s in %s.</p><p><strong><a href="%s">Click here to reserve your editorial feature ($499)</a></strong></p><p>This includes a professional editorial profile, digital badge, and distribution across our readership.</p><p>Best,<br>The Editorial Team<br>%s</p>`,
		req.BusinessName, brand.Name, link, brand.Name)

	err = s.crm.SendEmail(ctx, crm.EmailMessage{
		ContactID: req.ContactID,
		From:      brand.Email,
		To:        contact.Email,
		Subject:   fmt.Sprintf("Your %s Editorial Package — Reserve Your Spot", brand.Name),
		HTML:      html,
	})
	if err != nil {
		log.Error().Err(err).Str("contactId", req.ContactID).Msg("checkout offer send failed")
		return false
	}
	return true
}

// FulfillRequest identifies a paid feature purchase to fulfill.
type FulfillRequest struct {
	ContactID     string `json:"contactId"`
	BusinessName  string `json:"businessName"`
	BusinessCity  string `json:"businessCity"`
	BusinessState string `json:"businessState"`
	BusinessType  string `json:"businessType"`
	BrandTag      string `json:"brandTag"`
	Tier          string `json:"tier"`
}

// FulfillResult reports a completed fulfillment.
type FulfillResult struct {
	ProfileGenerated bool   `json:"profileGenerated"`
	Brand            string `json:"brand"`
	EmailSent        bool   `json:"emailSent"`
	Profile          string `json:"profile"`
}

// FulfillFeatured generates the paid editorial profile, emails it to the
// buyer, tags the contact, and posts the revenue notification. A contact
// without an email still gets tagged and counted; only the email is skipped.
func (s *Service) FulfillFeatured(ctx context.Context, req FulfillRequest) (*FulfillResult, error) {
	brand := registry.LookupBrand(req.BrandTag)
	isPremium := req.Tier == "premium"

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelQuality,
		MaxTokens: 800,
		System:    fulfillmentSystem(brand, isPremium),
		User:      fulfillmentUser(req, brand, isPremium),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate editorial profile: %w", err)
	}
	profile := strings.TrimSpace(res.Text)

	contact, err := s.crm.GetContact(ctx, req.ContactID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}

	emailSent := false
	if contact.Email != "" {
		err = s.crm.SendEmail(ctx, crm.EmailMessage{
			ContactID: req.ContactID,
			From:      brand.Email,
			To:        contact.Email,
			Subject:   fmt.Sprintf("🏆 Your %s Editorial Feature is Ready", brand.Name),
			HTML:      fulfillmentHTML(req.BusinessName, brand.Name, profile),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to send fulfillment email: %w", err)
		}
		emailSent = true
	}

	buyerTag := "featured-buyer"
	if isPremium {
		buyerTag = "premium-buyer"
	}
	if err := s.crm.AddTags(ctx, req.ContactID, []string{"featured-buyer", req.BrandTag, buyerTag}); err != nil {
		return nil, fmt.Errorf("failed to tag contact: %w", err)
	}

	saleLabel := "$499 Editorial Review"
	if isPremium {
		saleLabel = "$2,500 Premium Feature"
	}
	s.notifier.Notify(s.cfg.DiscordSMMRevenueWebhook, fmt.Sprintf(
		"💰 **%s SOLD**\n🏢 %s, %s\n📰 %s\n📝 %s...",
		saleLabel, req.BusinessName, req.BusinessCity, brand.Name, truncate(profile, 200)))

	log.Info().
		Str("contactId", req.ContactID).
		Str("brand", brand.ID).
		Bool("premium", isPremium).
		Bool("emailSent", emailSent).
		Msg("featured purchase fulfilled")

	return &FulfillResult{ProfileGenerated: true, Brand: brand.Name, EmailSent: emailSent, Profile: profile}, nil
}

// DailyReport posts the daily operations summary and returns its text.
func (s *Service) DailyReport(now time.Time) string {
	report := fmt.Sprintf(`📊 **SMM Daily Report — %s**

📰 Magazine Outreach:
• Check CRM SMM pipeline for today's sends

💰 Revenue:
• Visit dashboard.stripe.com for today's Featured + Certification sales

📝 Content:
• Writer's Engine articles: check /smm-content-published

🤖 System: All SMM services online ✅`, now.Format("Monday, January 2, 2006"))

	s.notifier.Notify(s.cfg.DiscordSMMDailyWebhook, report)
	return report
}

func outreachSystem(brand registry.BrandVoice) string {
	return fmt.Sprintf(`You are the editorial team at %s. Your tone is %s. Write a brief, personalized "as featured in" outreach email to a local business. Keep it to 3 short paragraphs. Sound like a legitimate media outlet reaching out for editorial coverage consideration.`,
		brand.Name, brand.Tone)
}

func outreachUser(req OutreachRequest, brand registry.BrandVoice) string {
	return fmt.Sprintf(`Write an outreach email to: %s, %s, %s. Business type: %s.

The email should:
1. Introduce %s and mention we're considering them for editorial coverage
2. Highlight our audience and what being featured means for their business
3. Invite them to learn more with a clear next step

Subject line: [Your Business Name] — %s Editorial Consideration

Sign from: The Editorial Team, %s`,
		req.BusinessName, req.BusinessCity, req.BusinessState, req.BusinessType,
		brand.Name, brand.Name, brand.Name)
}

func fulfillmentSystem(brand registry.BrandVoice, premium bool) string {
	price := "499"
	if premium {
		price = "2,500"
	}
	return fmt.Sprintf(`You are a senior editor at %s magazine. Your tone is %s. Write a world-class editorial profile about a business, as if published in the magazine. This is a paid editorial feature the business purchased for $%s.`,
		brand.Name, brand.Tone, price)
}

func fulfillmentUser(req FulfillRequest, brand registry.BrandVoice, premium bool) string {
	words := "350-450"
	if premium {
		words = "600-800"
	}
	return fmt.Sprintf(`Write a %s-word editorial profile for:

Business: %s
Location: %s, %s
Type: %s

Style: %s
Publication: %s

Make it sound prestigious, authentic, and shareable. The business owner should be proud to share this. Use quotes as if interviewed. Start with a compelling lede.`,
		words, req.BusinessName, req.BusinessCity, req.BusinessState, req.BusinessType,
		brand.Tone, brand.Name)
}

func fulfillmentHTML(businessName, brandName, profile string) string {
	return fmt.Sprintf(`<h2>Congratulations, %s!</h2>
<p>Your editorial feature in %s is now live. Here is your profile:</p>
<hr>
<div style="font-family: Georgia, serif; font-size: 16px; line-height: 1.8; padding: 20px; background: #f9f9f9; border-left: 4px solid #c8a951;">%s</div>
<hr>
<p><strong>Your Official %s Badge:</strong></p>
<p>[Digital badge will be delivered separately]</p>
<p>Thank you for being part of %s.<br>The Editorial Team</p>`,
		businessName, brandName, textparse.ParagraphsHTML(profile), brandName, brandName)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
