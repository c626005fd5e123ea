package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-supplied settings. Loaded once at startup;
// read-only afterwards.
type Config struct {
	Port string
	Env  string

	AnthropicKey string

	// CRM (GoHighLevel-compatible)
	CRMAPIKey     string
	CRMLocationID string
	CRMBaseURL    string

	// Discord webhooks (all optional; unset means the notification is skipped)
	DiscordSMMLeadsWebhook       string
	DiscordSMMRepliesWebhook     string
	DiscordSMMEscalationsWebhook string
	DiscordSMMRevenueWebhook     string
	DiscordSMMContentWebhook     string
	DiscordSMMDailyWebhook       string

	StripeDefaultFeaturedLink string

	SchedulerEnabled  bool
	SchedulerTimezone string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	return Config{
		Port: getEnv("PORT", "3001"),
		Env:  os.Getenv("ENV"),

		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),

		CRMAPIKey:     os.Getenv("GHL_API_KEY"),
		CRMLocationID: os.Getenv("GHL_LOCATION_ID"),
		CRMBaseURL:    getEnv("GHL_BASE_URL", "https://services.leadconnectorhq.com"),

		DiscordSMMLeadsWebhook:       os.Getenv("DISCORD_SMM_LEADS_WEBHOOK"),
		DiscordSMMRepliesWebhook:     os.Getenv("DISCORD_SMM_REPLIES_WEBHOOK"),
		DiscordSMMEscalationsWebhook: os.Getenv("DISCORD_SMM_ESCALATIONS_WEBHOOK"),
		DiscordSMMRevenueWebhook:     os.Getenv("DISCORD_SMM_REVENUE_WEBHOOK"),
		DiscordSMMContentWebhook:     os.Getenv("DISCORD_SMM_CONTENT_WEBHOOK"),
		DiscordSMMDailyWebhook:       os.Getenv("DISCORD_SMM_DAILY_WEBHOOK"),

		StripeDefaultFeaturedLink: os.Getenv("STRIPE_DEFAULT_FEATURED_LINK"),

		SchedulerEnabled:  getEnv("SCHEDULER_ENABLED", "true") == "true",
		SchedulerTimezone: getEnv("SCHEDULER_TIMEZONE", "America/New_York"),
	}
}

// FeaturedLink returns the Stripe payment link for a brand tag, falling back
// to the default link when no brand-specific one is configured.
func (c Config) FeaturedLink(brandTag string) string {
	key := "STRIPE_" + strings.ToUpper(strings.ReplaceAll(brandTag, "-", "_")) + "_FEATURED_LINK"
	if link := os.Getenv(key); link != "" {
		return link
	}
	return c.StripeDefaultFeaturedLink
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
