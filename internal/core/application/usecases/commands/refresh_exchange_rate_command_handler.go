package commands

import (
	"context"
	"log/slog"

	"shiprates/internal/core/ports"
)

// RefreshExchangeRateCommandHandler forces the exchange rate provider to
// refetch. The provider's own failure policy applies, so a refresh that
// cannot reach the quote source leaves the previous rate in effect.
type RefreshExchangeRateCommandHandler struct {
	exchangeRates ports.ExchangeRateProvider
	logger        *slog.Logger
}

// NewRefreshExchangeRateCommandHandler creates the refresh handler.
func NewRefreshExchangeRateCommandHandler(
	exchangeRates ports.ExchangeRateProvider,
	logger *slog.Logger,
) RefreshExchangeRateCommandHandler {
	return RefreshExchangeRateCommandHandler{
		exchangeRates: exchangeRates,
		logger:        logger.With("component", "refresh_exchange_rate_handler"),
	}
}

// Handle refreshes the cached rate.
func (h RefreshExchangeRateCommandHandler) Handle(ctx context.Context, cmd RefreshExchangeRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rate := h.exchangeRates.Refresh(ctx)
	h.logger.DebugContext(ctx, "exchange rate refreshed", "rate", rate)
	return nil
}
