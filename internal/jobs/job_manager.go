package jobs

import (
	"fmt"
)

// JobManager starts and stops the background jobs as one unit.
type JobManager struct {
	stalePlaceholderJob  *StalePlaceholderJob
	presenceBroadcastJob *PresenceBroadcastJob
}

func NewJobManager(stalePlaceholderJob *StalePlaceholderJob, presenceBroadcastJob *PresenceBroadcastJob) *JobManager {
	return &JobManager{
		stalePlaceholderJob:  stalePlaceholderJob,
		presenceBroadcastJob: presenceBroadcastJob,
	}
}

// StartAll starts every job. When one fails to start, the jobs already
// running are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePlaceholderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale placeholder job: %w", err)
	}

	if err := jm.presenceBroadcastJob.Start(); err != nil {
		jm.stalePlaceholderJob.Stop()
		return fmt.Errorf("failed to start presence broadcast job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.presenceBroadcastJob.Stop()
	jm.stalePlaceholderJob.Stop()
}
