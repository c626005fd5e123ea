package business2

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/shared/config"
)

func newFixture(mock *llm.MockClient) (*Service, *crm.MockAPI, *notify.CaptureNotifier) {
	crmMock := crm.NewMockAPI()
	capture := &notify.CaptureNotifier{}
	cfg := config.Config{
		CRMLocationID:            "loc-1",
		DiscordSMMRevenueWebhook: "https://discord.test/revenue",
	}
	return NewService(mock, crmMock, capture, cfg), crmMock, capture
}

func TestCreateListing_PremiumTier(t *testing.T) {
	article := "# Summit Wealth Sets a New Standard\n\n" + strings.Repeat("growth ", 780)
	mock := llm.NewMockClient(article)
	svc, _, capture := newFixture(mock)

	result, err := svc.CreateListing(context.Background(), ListingRequest{
		BusinessName: "Summit Wealth", BusinessCity: "Denver", BusinessState: "CO",
		BusinessType: "financial advisor", Tier: "premium", ContactID: "existing",
	})
	require.NoError(t, err)
	assert.Equal(t, "premium", result.Tier)
	assert.Equal(t, 250, result.Price)
	assert.Equal(t, []int{14}, result.UpsellDays)
	assert.Equal(t, "Summit Wealth Sets a New Standard", result.Headline)
	assert.Equal(t, 6, result.AdPositions)
	assert.NotEmpty(t, result.ListingID)

	call := mock.LastCall()
	assert.Equal(t, llm.ModelFast, call.Model)
	assert.Equal(t, 1600, call.MaxTokens, "ceiling is twice the tier word target")
	assert.Contains(t, call.User, "800-word")
	assert.Contains(t, call.User, "$250")

	require.Len(t, capture.Sent, 1)
	assert.Equal(t, "https://discord.test/revenue", capture.Sent[0].WebhookURL)
	assert.Contains(t, capture.Sent[0].Content, "Premium — $250")
}

func TestCreateListing_UnknownTierFallsBackToListing(t *testing.T) {
	mock := llm.NewMockClient("Headline\n\nBody paragraph.")
	svc, _, _ := newFixture(mock)

	result, err := svc.CreateListing(context.Background(), ListingRequest{
		BusinessName: "Corner Store", Tier: "platinum", ContactID: "existing",
	})
	require.NoError(t, err)
	assert.Equal(t, "listing", result.Tier)
	assert.Equal(t, 50, result.Price)
	assert.Equal(t, []int{3, 7, 14}, result.UpsellDays)
	assert.Equal(t, 600, mock.LastCall().MaxTokens)
}

func TestCreateListing_HTMLCarriesAllAdPositions(t *testing.T) {
	mock := llm.NewMockClient("Bakery on the Rise\n\nPara one.\n\nPara two.")
	svc, _, _ := newFixture(mock)

	result, err := svc.CreateListing(context.Background(), ListingRequest{
		BusinessName: "Rise Bakery", ContactID: "existing",
	})
	require.NoError(t, err)

	html := result.ArticleHTML
	assert.Equal(t, 6, strings.Count(html, `class="ad-unit`))
	assert.Contains(t, html, "div-gpt-ad-leaderboard")
	assert.Contains(t, html, "div-gpt-ad-mobile-anchor")
	assert.Contains(t, html, "pbjs.addAdUnits")
	assert.Contains(t, html, "Bakery on the Rise | Business 2.0 Magazine")
	assert.Contains(t, html, "<p>Para one.</p><p>Para two.</p>")
}

func TestCreateListing_NewBuyerCreatesContact(t *testing.T) {
	mock := llm.NewMockClient("Headline\n\nBody.")
	svc, crmMock, _ := newFixture(mock)

	_, err := svc.CreateListing(context.Background(), ListingRequest{
		BusinessName: "Rosie's Tacos", BusinessCity: "Austin", BusinessState: "TX",
		OwnerName: "Rosie Q Alvarez", Email: "rosie@tacos.test", Phone: "555-0100",
		StripePaymentID: "pi_123",
	})
	require.NoError(t, err)

	require.Len(t, crmMock.Created, 1)
	created := crmMock.Created[0]
	assert.Equal(t, "Rosie", created.FirstName)
	assert.Equal(t, "Q Alvarez", created.LastName)
	assert.Equal(t, "rosie@tacos.test", created.Email)
	assert.Equal(t, "loc-1", created.LocationID)
	assert.Equal(t, []string{"business2", "smm-lead", "featured-buyer"}, created.Tags)
}

func TestCreateListing_ExistingContactNotRecreated(t *testing.T) {
	mock := llm.NewMockClient("Headline\n\nBody.")
	svc, crmMock, _ := newFixture(mock)

	_, err := svc.CreateListing(context.Background(), ListingRequest{
		BusinessName: "Known Biz", Email: "known@biz.test", ContactID: "c-1",
	})
	require.NoError(t, err)
	assert.Empty(t, crmMock.Created)
}

func TestCreateListing_MissingBusinessName(t *testing.T) {
	mock := llm.NewMockClient("unused")
	svc, _, _ := newFixture(mock)

	_, err := svc.CreateListing(context.Background(), ListingRequest{Tier: "premium"})
	require.ErrorIs(t, err, ErrBusinessNameRequired)
	assert.Zero(t, mock.CallCount())
}
