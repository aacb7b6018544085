package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PlaceholderPurger removes placeholder records that stopped receiving updates.
type PlaceholderPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeStalePlaceholdersCommand) (int64, error)
}

// StalePlaceholderJob deletes placeholder deliveries idle for longer than ttl.
type StalePlaceholderJob struct {
	purger   PlaceholderPurger
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStalePlaceholderJob(purger PlaceholderPurger, ttl time.Duration, schedule string, logger *slog.Logger) *StalePlaceholderJob {
	return &StalePlaceholderJob{
		purger:   purger,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_placeholder_job"),
	}
}

// Run performs one purge. Failures are logged and retried on the next tick.
func (j *StalePlaceholderJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeStalePlaceholdersCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale placeholder job misconfigured", "ttl", j.ttl.String(), "error", err)
		return
	}

	removed, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale placeholder job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Stale placeholders removed", "count", removed)
	}
}

func (j *StalePlaceholderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale placeholder job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// Stop waits for a running purge to finish.
func (j *StalePlaceholderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale placeholder job stopped")
}
