package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/robfig/cron/v3"
)

// reportedStatuses are the lifecycle states counted as open work.
var reportedStatuses = []serviceorder.Status{
	serviceorder.StatusPending,
	serviceorder.StatusInProgress,
	serviceorder.StatusAwaitingPayment,
}

// OpenOrdersReportJob logs a morning summary of the orders still open in the
// shop. It is purely read-side and never mutates data.
type OpenOrdersReportJob struct {
	handler queries.ListOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersReportJob creates the report job. The schedule fires once a
// day at 06:00 before the shop opens.
func NewOpenOrdersReportJob(handler queries.ListOrdersByStatusQueryHandler, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "open_orders_report_job"),
	}
}

// Start schedules the daily report.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running daily at 06:00)")
	return nil
}

// Stop stops the report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}

func (j *OpenOrdersReportJob) report() {
	ctx := context.Background()

	for _, status := range reportedStatuses {
		query, err := queries.NewListOrdersByStatusQuery(status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report failed to build query", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report failed", "status", status.String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Open orders report",
			"status", status.String(), "count", len(orders))
	}
}
