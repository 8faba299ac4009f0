package jobs

import (
	"context"
	"log/slog"

	"saddleoms/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically sweeps for active orders whose estimated
// delivery date has passed and reports each one. Runs every minute.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates the overdue order sweep job.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue order sweep, running once a minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		overdue, handleErr := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue order sweep failed", "error", handleErr)
			return
		}

		for _, o := range overdue {
			j.logger.WarnContext(ctx, "Order is overdue",
				"orderId", o.ID,
				"orderNumber", o.OrderNumber,
				"customerName", o.CustomerName,
				"status", o.Status,
				"priority", o.Priority,
				"estimatedDeliveryDate", o.EstimatedDeliveryDate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order sweep started (running every minute)")
	return nil
}

// Stop stops the overdue order sweep.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order sweep stopped")
}
