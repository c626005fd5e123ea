// Package business2 is the self-service listing portal: a paid tier buys a
// generated business profile article published with six live ad positions.
package business2

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/core/registry"
	"github.com/bdt-media/sales-engine/internal/core/textparse"
	"github.com/bdt-media/sales-engine/internal/shared/config"
)

var ErrBusinessNameRequired = errors.New("businessName is required")

type Service struct {
	llm      llm.Client
	crm      crm.API
	notifier notify.Notifier
	cfg      config.Config
}

func NewService(client llm.Client, crmAPI crm.API, notifier notify.Notifier, cfg config.Config) *Service {
	return &Service{llm: client, crm: crmAPI, notifier: notifier, cfg: cfg}
}

// ListingRequest describes one purchased listing.
type ListingRequest struct {
	BusinessName    string `json:"businessName"`
	BusinessCity    string `json:"businessCity"`
	BusinessState   string `json:"businessState"`
	BusinessType    string `json:"businessType"`
	Website         string `json:"website"`
	OwnerName       string `json:"ownerName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Tier            string `json:"tier"`
	ContactID       string `json:"contactId"`
	StripePaymentID string `json:"stripePaymentId"`
}

// ListingResult reports a created listing.
type ListingResult struct {
	ListingID     string `json:"listingId"`
	Tier          string `json:"tier"`
	Price         int    `json:"price"`
	Headline      string `json:"headline"`
	ArticleLength int    `json:"articleLength"`
	ArticleHTML   string `json:"articleHtml"`
	AdPositions   int    `json:"adPositions"`
	UpsellDays    []int  `json:"upsellDays"`
	Message       string `json:"message"`
}

// CreateListing generates the tier-sized profile article, renders the listing
// page with all ad positions, registers a new buyer in the CRM when needed,
// and posts the revenue notification.
func (s *Service) CreateListing(ctx context.Context, req ListingRequest) (*ListingResult, error) {
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, ErrBusinessNameRequired
	}
	tier := registry.LookupTier(req.Tier)

	res, err := s.llm.Complete(ctx, llm.Request{
		Model:     llm.ModelFast,
		MaxTokens: tier.Words * 2,
		User:      listingPrompt(req, tier),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing article: %w", err)
	}

	article := strings.TrimSpace(res.Text)
	headline := textparse.Headline(article)
	listingID := uuid.NewString()
	html := renderListingHTML(headline, req.BusinessName, article)

	if req.ContactID == "" && req.Email != "" {
		if err := s.registerBuyer(ctx, req); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
	}

	s.notifier.Notify(s.cfg.DiscordSMMRevenueWebhook, fmt.Sprintf(
		"💰 **Business 2.0 %s — $%d**\n🏢 %s, %s %s\n📝 %s",
		tier.Label, tier.Price, req.BusinessName, req.BusinessCity, req.BusinessState, headline))

	log.Info().
		Str("listingId", listingID).
		Str("tier", tier.ID).
		Int("price", tier.Price).
		Str("business", req.BusinessName).
		Msg("business2 listing created")

	return &ListingResult{
		ListingID:     listingID,
		Tier:          tier.ID,
		Price:         tier.Price,
		Headline:      headline,
		ArticleLength: len(article),
		ArticleHTML:   html,
		AdPositions:   AdPositionCount,
		UpsellDays:    tier.UpsellDays,
		Message:       fmt.Sprintf("Business 2.0 %s created for %s", tier.Label, req.BusinessName),
	}, nil
}

// registerBuyer creates the CRM contact for a first-time buyer so the upsell
// sequence can run against it.
func (s *Service) registerBuyer(ctx context.Context, req ListingRequest) error {
	firstName := req.BusinessName
	lastName := ""
	if req.OwnerName != "" {
		parts := strings.Fields(req.OwnerName)
		firstName = parts[0]
		lastName = strings.Join(parts[1:], " ")
	}

	in := crm.ContactInput{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.BusinessName,
		City:        req.BusinessCity,
		State:       req.BusinessState,
		Tags:        []string{"business2", "smm-lead", "featured-buyer"},
		LocationID:  s.cfg.CRMLocationID,
	}
	in.SetField("contact.business_name", req.BusinessName)
	in.SetField("contact.brand_tag", "business2")
	in.SetField("contact.featured_brand", "Business 2.0 Magazine")
	in.SetField("contact.stripe_customer_id", req.StripePaymentID)

	return s.crm.CreateContact(ctx, in)
}

func listingPrompt(req ListingRequest, tier registry.Tier) string {
	var extra strings.Builder
	if req.Website != "" {
		extra.WriteString("Website: " + req.Website + "\n")
	}
	if req.OwnerName != "" {
		extra.WriteString("Owner/Contact: " + req.OwnerName + "\n")
	}

	return fmt.Sprintf(`Write a %d-word business profile article for Business 2.0 Magazine about:

Business: %s
Location: %s, %s
Type: %s
%s
Style: Professional, entrepreneurial, growth-focused. Suitable for a business magazine.
Include a compelling headline, 3-4 substantive paragraphs, and end with a business spotlight quote.
This is a %s placement ($%d).`,
		tier.Words, req.BusinessName, req.BusinessCity, req.BusinessState, req.BusinessType,
		extra.String(), tier.Label, tier.Price)
}
