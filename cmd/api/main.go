package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/core/prompts"
	"github.com/bdt-media/sales-engine/internal/modules/business2"
	"github.com/bdt-media/sales-engine/internal/modules/smm"
	"github.com/bdt-media/sales-engine/internal/modules/studio"
	"github.com/bdt-media/sales-engine/internal/modules/writers"
	"github.com/bdt-media/sales-engine/internal/scheduler"
	"github.com/bdt-media/sales-engine/internal/shared/config"
	"github.com/bdt-media/sales-engine/internal/shared/utils"
)

func main() {
	// Init logger
	utils.InitLogger()

	// Load config
	cfg := config.LoadConfig()
	log.Info().Str("env", cfg.Env).Msg("🚀 Starting sales-engine")

	// Collaborator clients
	llmClient := llm.NewAnthropicClient(cfg.AnthropicKey)
	crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIKey, cfg.CRMLocationID)
	notifier := notify.NewDiscordNotifier()

	// Services
	writersSvc := writers.NewService(llmClient)
	studioSvc := studio.NewService(llmClient)
	smmSvc := smm.NewService(llmClient, crmClient, notifier, cfg)
	business2Svc := business2.NewService(llmClient, crmClient, notifier, cfg)

	// Handlers
	writersHandler := writers.NewHandler(writersSvc)
	studioHandler := studio.NewHandler(studioSvc)
	smmHandler := smm.NewHandler(smmSvc)
	business2Handler := business2.NewHandler(business2Svc)

	app := fiber.New(fiber.Config{
		BodyLimit: 5 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Service descriptor + swipe file
	app.Get("/", serviceDescriptor(cfg))
	app.Get("/swipe-file", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"swipeFile": prompts.SwipeFile})
	})

	// Content studio
	app.Post("/generate/email", studioHandler.GenerateEmail)
	app.Post("/generate/social", studioHandler.GenerateSocial)
	app.Post("/generate/ad-copy", studioHandler.GenerateAdCopy)
	app.Post("/generate/video-script", studioHandler.GenerateVideoScript)
	app.Post("/generate/canva-brief", studioHandler.GenerateCanvaBrief)
	app.Post("/calendar/weekly", studioHandler.WeeklyCalendar)
	app.Post("/calendar/monthly", studioHandler.MonthlyCalendar)

	// Writer's Engine
	app.Post("/writers-engine/article", writersHandler.GenerateArticle)
	app.Post("/writers-engine/quality-check", writersHandler.QualityCheck)
	app.Get("/writers-engine/publications", writersHandler.ListPublications)

	// SMM pipeline
	app.Post("/smm/outreach", smmHandler.Outreach)
	app.Post("/smm/classify-reply", smmHandler.ClassifyReply)
	app.Post("/smm/fulfill-featured", smmHandler.FulfillFeatured)
	app.Get("/smm/daily-report", smmHandler.DailyReport)

	// Business 2.0 portal
	app.Post("/business2/create", business2Handler.CreateListing)

	// Batch scheduler
	if cfg.SchedulerEnabled {
		sched := scheduler.New(writersSvc, smmSvc, crmClient, notifier, cfg)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start scheduler")
		}
		defer sched.Stop()
		log.Info().Msg("⏰ Cron: content engine 6AM, SMM outreach 8AM, reports 9AM")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("✍️  Sales engine listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("🛑 Shutting down sales-engine...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
	log.Info().Msg("👋 Goodbye!")
}

func serviceDescriptor(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "BDT Sales Engine",
			"version": "1.0.0",
			"status":  "RUNNING",
			"port":    cfg.Port,
			"endpoints": []string{
				"POST /generate/email",
				"POST /generate/social",
				"POST /generate/ad-copy",
				"POST /generate/video-script",
				"POST /generate/canva-brief",
				"POST /calendar/weekly",
				"POST /calendar/monthly",
				"GET  /swipe-file",
				"POST /writers-engine/article",
				"POST /writers-engine/quality-check",
				"GET  /writers-engine/publications",
				"POST /smm/outreach",
				"POST /smm/classify-reply",
				"POST /smm/fulfill-featured",
				"GET  /smm/daily-report",
				"POST /business2/create",
			},
		})
	}
}
