package jobs

import (
	"context"
	"log/slog"

	"reservation/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenOrdersReportJob periodically logs the orders still awaiting a
// successful charge.
type OpenOrdersReportJob struct {
	handler  queries.GetOpenOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOpenOrdersReportJob creates a new job for reporting open orders on the
// given cron schedule (with seconds resolution).
func NewOpenOrdersReportJob(
	handler queries.GetOpenOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "open_orders_report_job"),
	}
}

// Start begins the open orders report job.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the open orders report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}

func (j *OpenOrdersReportJob) run() {
	ctx := context.Background()

	open, err := j.handler.Handle(ctx, queries.NewGetOpenOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
		return
	}

	if len(open) == 0 {
		return
	}

	for _, o := range open {
		j.logger.InfoContext(ctx, "Order awaiting payment",
			"reference", o.Reference, "customer", o.CustomerName, "price", o.Price)
	}
}
