package jobs

import (
	"context"
	"log/slog"
	"math/rand"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PriceFluctuationJob periodically moves every flight price by up to ten
// percent in either direction. Subscribed customers see each change through
// the regular notification fan-out.
type PriceFluctuationJob struct {
	handler  commands.ChangeFlightPriceCommandHandler
	flights  ports.FlightRepository
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPriceFluctuationJob creates a new job for nudging flight prices on the
// given cron schedule (with seconds resolution).
func NewPriceFluctuationJob(
	handler commands.ChangeFlightPriceCommandHandler,
	flights ports.FlightRepository,
	schedule string,
	logger *slog.Logger,
) *PriceFluctuationJob {
	return &PriceFluctuationJob{
		handler:  handler,
		flights:  flights,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "price_fluctuation_job"),
	}
}

// Start begins the price fluctuation job.
func (j *PriceFluctuationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Price fluctuation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the price fluctuation job.
func (j *PriceFluctuationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Price fluctuation job stopped")
}

func (j *PriceFluctuationJob) run() {
	ctx := context.Background()

	all, err := j.flights.GetAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Price fluctuation job failed to list flights", "error", err)
		return
	}

	for _, f := range all {
		if f.IsCancelled() {
			continue
		}

		// Random factor in [0.9, 1.1).
		newPrice := f.Price() * (0.9 + 0.2*rand.Float64())
		cmd, err := commands.NewChangeFlightPriceCommand(f.Number(), newPrice)
		if err != nil {
			j.logger.ErrorContext(ctx, "Price fluctuation job built an invalid command",
				"flight", f.Number(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Price fluctuation job failed to reprice flight",
				"flight", f.Number(), "error", err)
		}
	}
}
