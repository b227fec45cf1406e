package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"shiprates/internal/core/application/usecases/commands"
)

// ExchangeRateRefreshJob manages the scheduled refresh of the CAD-to-USD
// rate cache. Runs hourly so request paths rarely pay for a live fetch.
type ExchangeRateRefreshJob struct {
	handler commands.RefreshExchangeRateCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExchangeRateRefreshJob creates a new job for refreshing the rate cache.
// Uses RefreshExchangeRateCommandHandler to force a fetch every hour.
func NewExchangeRateRefreshJob(handler commands.RefreshExchangeRateCommandHandler, logger *slog.Logger) *ExchangeRateRefreshJob {
	return &ExchangeRateRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "exchange_rate_refresh_job"),
	}
}

// Start begins the refresh job at the top of every hour.
func (j *ExchangeRateRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshExchangeRateCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Exchange rate refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Exchange rate refresh job started (running hourly)")
	return nil
}

// Stop stops the refresh job.
func (j *ExchangeRateRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Exchange rate refresh job stopped")
}
