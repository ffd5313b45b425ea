package jobs

import (
	"fmt"
	"log/slog"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	priceFluctuationJob *PriceFluctuationJob
	openOrdersReportJob *OpenOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution; schedule
// is a cron expression with seconds resolution shared by all jobs.
func NewJobManager(
	repriceHandler commands.ChangeFlightPriceCommandHandler,
	flights ports.FlightRepository,
	openOrdersHandler queries.GetOpenOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		priceFluctuationJob: NewPriceFluctuationJob(repriceHandler, flights, schedule, logger),
		openOrdersReportJob: NewOpenOrdersReportJob(openOrdersHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.priceFluctuationJob.Start(); err != nil {
		return fmt.Errorf("failed to start price fluctuation job: %w", err)
	}

	if err := jm.openOrdersReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.priceFluctuationJob.Stop()
		return fmt.Errorf("failed to start open orders report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.openOrdersReportJob.Stop()
	jm.priceFluctuationJob.Stop()
}
