package jobs

import (
	"fmt"
	"log/slog"

	"shiprates/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	exchangeRateRefreshJob *ExchangeRateRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshExchangeRateHandler commands.RefreshExchangeRateCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		exchangeRateRefreshJob: NewExchangeRateRefreshJob(refreshExchangeRateHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.exchangeRateRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start exchange rate refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.exchangeRateRefreshJob.Stop()
}
