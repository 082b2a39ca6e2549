// Package vcs drives the version control tool that makes files writable.
package vcs

import (
	"context"
	"io"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Checkout        = (*Checkout)(nil)
	_ ports.CheckoutFactory = (*Factory)(nil)
)

// Factory builds Checkout clients from configuration.
type Factory struct {
	executor ports.Executor
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor) *Factory {
	return &Factory{executor: executor}
}

// NewCheckout returns a client for the configured commands.
func (f *Factory) NewCheckout(cfg domain.CheckoutConfig) ports.Checkout {
	return NewCheckout(f.executor, cfg)
}

// Checkout runs the configured edit and add commands with file paths appended.
type Checkout struct {
	executor ports.Executor
	edit     []string
	add      []string
}

// NewCheckout creates a new Checkout.
func NewCheckout(executor ports.Executor, cfg domain.CheckoutConfig) *Checkout {
	return &Checkout{
		executor: executor,
		edit:     cfg.Edit,
		add:      cfg.Add,
	}
}

// Available checks that every configured tool resolves on PATH.
func (c *Checkout) Available() error {
	for _, argv := range [][]string{c.edit, c.add} {
		if len(argv) == 0 {
			return zerr.With(domain.ErrCheckoutToolNotFound, "reason", "no command configured")
		}
		if _, err := c.executor.LookPath(argv[0]); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCheckoutToolNotFound.Error()), "tool", argv[0])
		}
	}
	return nil
}

// Edit checks paths out for editing.
func (c *Checkout) Edit(ctx context.Context, paths []string) error {
	return c.run(ctx, c.edit, paths)
}

// Add schedules new files for addition.
func (c *Checkout) Add(ctx context.Context, paths []string) error {
	return c.run(ctx, c.add, paths)
}

func (c *Checkout) run(ctx context.Context, argv, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if len(argv) == 0 {
		return zerr.With(domain.ErrCheckoutToolNotFound, "reason", "no command configured")
	}

	args := make([]string, 0, len(argv)+len(paths))
	args = append(args, argv...)
	args = append(args, paths...)

	stdout, stderr := io.Discard, io.Discard
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout, stderr = v.Stdout(), v.Stderr()
	}

	if err := c.executor.Run(ctx, ports.Command{Args: args}, stdout, stderr); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCheckoutFailed.Error()), "files", len(paths))
	}
	return nil
}
