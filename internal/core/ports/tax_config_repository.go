package ports

import (
	"context"

	"appcenar/internal/core/domain/model/kernel"
)

// TaxConfigRepository provides the system-wide tax configuration.
// The configuration is a singleton record; reading it when none exists
// lazily creates one with the default rate.
type TaxConfigRepository interface {
	// GetRate returns the configured tax rate, creating the singleton
	// record with the default rate on first use.
	GetRate(ctx context.Context) (kernel.TaxRate, error)
}
