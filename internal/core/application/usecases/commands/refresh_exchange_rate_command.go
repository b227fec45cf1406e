// Package commands contains the write-side operations of the service.
// The only mutable state the service owns is the process-wide exchange
// rate cache, refreshed through RefreshExchangeRateCommand.
package commands

import (
	"errors"

	"shiprates/internal/pkg/guard"
)

var ErrRefreshExchangeRateCommandIsNotConstructed = errors.New(
	"RefreshExchangeRateCommand must be created via NewRefreshExchangeRateCommand constructor",
)

// RefreshExchangeRateCommand requests a forced refresh of the cached
// CAD-to-USD rate, bypassing the cache TTL. Issued by the hourly refresh
// job to keep the cache warm so request paths rarely pay for the fetch.
type RefreshExchangeRateCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshExchangeRateCommand creates a refresh command.
func NewRefreshExchangeRateCommand() RefreshExchangeRateCommand {
	return RefreshExchangeRateCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshExchangeRateCommand) Validate() error {
	return c.guard.Validate(ErrRefreshExchangeRateCommandIsNotConstructed)
}
