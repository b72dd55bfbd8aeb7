package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report once a minute.
const DefaultStatusReportSchedule = "@every 1m"

// OrderStatusSummaryHandler is satisfied by queries.GetOrderStatusSummaryQueryHandler.
type OrderStatusSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusSummaryQuery) (queries.GetOrderStatusSummaryQueryResponse, error)
}

// OrderStatusReportJob periodically logs how many non-deleted orders are in
// each status. It only reads.
type OrderStatusReportJob struct {
	handler  OrderStatusSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusReportJob creates the job. schedule accepts standard 5-field
// cron expressions and descriptors such as "@every 30s" or "@hourly".
func NewOrderStatusReportJob(handler OrderStatusSummaryHandler, schedule string, logger *slog.Logger) *OrderStatusReportJob {
	logger = logger.With("component", "order_status_report_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	return &OrderStatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Name identifies the job in JobManager errors.
func (j *OrderStatusReportJob) Name() string {
	return "order status report"
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Report logs one summary line with a count per status and the total.
func (j *OrderStatusReportJob) Report(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(summary.Statuses)+2)
	for _, line := range summary.Statuses {
		attrs = append(attrs, line.Status.String(), line.Count)
	}
	attrs = append(attrs, "total", summary.Total)

	j.logger.InfoContext(ctx, "Order status report", attrs...)
	return nil
}

// Stop stops scheduling and waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}
