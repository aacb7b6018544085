package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type OnlineBroadcaster interface {
	BroadcastOnline(ctx context.Context) error
}

// PresenceBroadcastJob periodically republishes the full online list so that
// subscribers that missed a status change converge.
type PresenceBroadcastJob struct {
	broadcaster OnlineBroadcaster
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewPresenceBroadcastJob(broadcaster OnlineBroadcaster, schedule string, logger *slog.Logger) *PresenceBroadcastJob {
	return &PresenceBroadcastJob{
		broadcaster: broadcaster,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "presence_broadcast_job"),
	}
}

func (j *PresenceBroadcastJob) Run(ctx context.Context) {
	if err := j.broadcaster.BroadcastOnline(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Presence broadcast job failed", "error", err)
	}
}

func (j *PresenceBroadcastJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Presence broadcast job started", "schedule", j.schedule)
	return nil
}

func (j *PresenceBroadcastJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Presence broadcast job stopped")
}
