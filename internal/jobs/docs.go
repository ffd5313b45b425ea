// Package jobs provides scheduled background tasks for the reservation
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the reservation service.
//
// # Available Jobs
//
// 1. PriceFluctuationJob - periodically nudges flight prices up or down,
// which exercises the notification fan-out to subscribed customers
// 2. OpenOrdersReportJob - periodically logs the orders still awaiting a
// successful charge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(repriceHandler, flightRepo, openOrdersHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs share one cron expression taken from configuration, with
// seconds resolution (for example "*/10 * * * * *" for every ten seconds).
package jobs
