package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/splitzee/splitzee/internal/date"
)

// Scheduler runs a Processor on a cron schedule.
type Scheduler struct {
	processor *Processor
	spec      string
	today     func() date.Date
}

// NewScheduler validates spec (standard 5-field cron or a descriptor such as "@daily").
func NewScheduler(processor *Processor, spec string) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid recurring schedule %q: %w", spec, err)
	}
	return &Scheduler{processor: processor, spec: spec, today: date.Today}, nil
}

// RunOnce processes due templates as of today.
func (s *Scheduler) RunOnce(ctx context.Context) {
	count, err := s.processor.ProcessDue(ctx, s.today())
	if err != nil {
		slog.ErrorContext(ctx, "Recurring processing failed", "error", err)
		return
	}
	slog.DebugContext(ctx, "Recurring processing finished", "created", count)
}

// Run processes once immediately, then on every schedule tick until ctx is done.
// It waits for a running job to finish before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	s.RunOnce(ctx)

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	slog.Info("Recurring scheduler started", "schedule", s.spec)

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("Recurring scheduler stopped")
	return nil
}
