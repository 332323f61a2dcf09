// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StorageProbeJob - pings the database on a fixed interval, prepares the schema
// on the first success and flips the availability gate the HTTP layer consults
//
// # Usage
//
//	probe := jobs.NewStorageProbeJob(storage, availability, 15*time.Second, logger)
//	jobManager := jobs.NewJobManager(probe)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed probe never stops the job. The gate closes, HTTP handlers answer 503,
// and the next tick tries again. Only transitions are logged.
package jobs
