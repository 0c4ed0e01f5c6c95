// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(queue, sender, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// NotificationDispatchJob runs every second and drains the in-memory
// notification queue. Delivery failures are logged and the message dropped;
// notifications are advisory and must never wedge the queue.
package jobs
