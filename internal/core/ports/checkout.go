package ports

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
)

//go:generate mockgen -source=checkout.go -destination=mocks/mock_checkout.go -package=mocks

// Checkout prepares files under version control for writing.
type Checkout interface {
	// Available reports an error when the checkout tool cannot be run.
	Available() error

	// Edit checks out existing files for editing.
	Edit(ctx context.Context, paths []string) error

	// Add schedules new files for addition.
	Add(ctx context.Context, paths []string) error
}

// CheckoutFactory builds a checkout client for the configured tool.
type CheckoutFactory interface {
	NewCheckout(cfg domain.CheckoutConfig) Checkout
}
