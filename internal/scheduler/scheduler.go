// Package scheduler runs the daily batch jobs. Jobs call module services
// in-process; the HTTP surface is for external callers only.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/modules/smm"
	"github.com/bdt-media/sales-engine/internal/modules/writers"
	"github.com/bdt-media/sales-engine/internal/shared/config"
)

// Batch limits for the daily outreach job.
const (
	outreachListLimit = 50
	outreachBatchCap  = 30
)

// contentBrands is the fixed publication list for the daily content engine.
var contentBrands = []string{
	"smart-money", "gourmet", "ladies-home", "blender",
	"modern-bride", "family-circle", "teen-people",
}

// Scheduler owns the cron runner and the batch jobs it triggers.
type Scheduler struct {
	cron     *cron.Cron
	writers  *writers.Service
	smm      *smm.Service
	crm      crm.API
	notifier notify.Notifier
	cfg      config.Config

	// sleep and now are injectable for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// New builds a scheduler in the configured time zone. An unknown zone falls
// back to UTC rather than failing startup.
func New(writersSvc *writers.Service, smmSvc *smm.Service, crmAPI crm.API, notifier notify.Notifier, cfg config.Config) *Scheduler {
	loc, err := time.LoadLocation(cfg.SchedulerTimezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", cfg.SchedulerTimezone).Msg("unknown scheduler timezone, using UTC")
		loc = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		writers:  writersSvc,
		smm:      smmSvc,
		crm:      crmAPI,
		notifier: notifier,
		cfg:      cfg,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Start registers the daily jobs and starts the cron runner.
func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		spec string
		run  func()
	}{
		{"content-engine", "0 6 * * *", func() { s.RunContentEngine(context.Background()) }},
		{"magazine-outreach", "0 8 * * *", func() { s.RunOutreachBatch(context.Background()) }},
		{"daily-report", "0 9 * * *", func() { s.RunDailyReport() }},
	}

	for _, j := range jobs {
		if _, err := s.cron.AddFunc(j.spec, j.run); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", j.name, err)
		}
		log.Info().Str("job", j.name).Str("schedule", j.spec).Msg("job scheduled")
	}

	s.cron.Start()
	log.Info().Str("timezone", s.cfg.SchedulerTimezone).Msg("scheduler started")
	return nil
}

// Stop stops the cron runner.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}
