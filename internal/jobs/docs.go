// Package jobs runs the periodic maintenance of the courier service on
// github.com/robfig/cron/v3 schedules (six fields, seconds first).
//
//   - StalePlaceholderJob deletes placeholder deliveries whose last update is
//     older than the configured TTL.
//   - PresenceBroadcastJob republishes the list of online users.
//
// Both are started and stopped through JobManager:
//
//	jm := jobs.NewJobManager(
//		jobs.NewStalePlaceholderJob(purgeHandler, 24*time.Hour, "0 */10 * * * *", logger),
//		jobs.NewPresenceBroadcastJob(tracker, "*/30 * * * * *", logger),
//	)
//	if err := jm.StartAll(); err != nil {
//		return err
//	}
//	defer jm.StopAll()
//
// A failing run is logged and the job keeps its schedule.
package jobs
