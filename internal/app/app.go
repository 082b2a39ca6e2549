// Package app implements the application layer for rebind.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/engine/aggregator"
	"go.trai.ch/rebind/internal/engine/batch"
	"go.trai.ch/rebind/internal/engine/reconciler"
	"go.trai.ch/rebind/internal/engine/resolver"
	"go.trai.ch/rebind/internal/engine/synthesizer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locator      ports.WorkspaceLocator
	aggregator   *aggregator.Aggregator
	registries   ports.PackageRegistryFactory
	inspector    ports.ArtifactInspector
	identities   ports.IdentityStore
	engine       *reconciler.Engine
	synth        *synthesizer.Synthesizer
	checkouts    ports.CheckoutFactory
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.WorkspaceLocator,
	agg *aggregator.Aggregator,
	registries ports.PackageRegistryFactory,
	inspector ports.ArtifactInspector,
	identities ports.IdentityStore,
	engine *reconciler.Engine,
	synth *synthesizer.Synthesizer,
	checkouts ports.CheckoutFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		locator:      locator,
		aggregator:   agg,
		registries:   registries,
		inspector:    inspector,
		identities:   identities,
		engine:       engine,
		synth:        synth,
		checkouts:    checkouts,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// RunOptions holds the command line overrides of a run. Zero values keep the
// configured setting.
type RunOptions struct {
	Root        string
	Mode        string
	Source      string
	ScratchDir  string
	Parallelism int
	NoCache     bool
	DryRun      bool
	Checkout    bool
}

// Run reconciles the workspace at opts.Root and rewrites its binding
// documents. The returned report is complete even when individual packages or
// documents were skipped.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	root, err := absRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	cfg, err = applyOptions(cfg, opts)
	if err != nil {
		return nil, err
	}

	var checkout ports.Checkout
	if cfg.Checkout.Enabled && !opts.DryRun {
		checkout = a.checkouts.NewCheckout(cfg.Checkout)
		if err := checkout.Available(); err != nil {
			return nil, err
		}
	}

	locations, err := a.locator.Locate(ctx, root, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(fmt.Sprintf("found %d projects with lockfiles", len(locations)))

	ws := a.aggregator.Aggregate(root, locations, cfg.Frameworks)

	clientOpts := resolver.Options{Root: root, ScratchDir: opts.ScratchDir}
	if cfg.Cache {
		clientOpts.Store = a.identities
	}
	client := resolver.NewClient(a.registries.NewRegistry(cfg.Registry), a.inspector, a.telemetry, a.logger, clientOpts)

	report, err := a.engine.Reconcile(ctx, ws, client, reconciler.Options{
		Mode:        cfg.Mode,
		Parallelism: cfg.Parallelism,
	})
	if err != nil {
		return nil, err
	}
	report.RunID = uuid.NewString()

	changes := a.synth.Plan(ws)
	if opts.DryRun {
		report.Changed, report.Created = synthesizer.Paths(changes)
		report.Sort()
		return report, nil
	}

	if checkout != nil {
		existing, _ := synthesizer.Paths(changes)
		a.warnFailed("checkout", batch.Run(ctx, existing, cfg.Checkout.BatchSize, checkout.Edit))
	}

	written := a.synth.Apply(changes)
	report.Changed, report.Created = synthesizer.Paths(written)

	if checkout != nil && len(report.Created) > 0 {
		a.warnFailed("add", batch.Run(ctx, report.Created, cfg.Checkout.BatchSize, checkout.Add))
	}

	report.Sort()
	return report, nil
}

// Clean removes the persisted identity cache of the workspace at root and
// the default scratch directory.
func (a *App) Clean(_ context.Context, root string) error {
	root, err := absRoot(root)
	if err != nil {
		return err
	}

	if err := a.remove(domain.DefaultCachePath(root)); err != nil {
		return err
	}
	return a.remove(resolver.DefaultScratchDir())
}

func (a *App) remove(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}

func (a *App) warnFailed(action string, results []batch.Result[string]) {
	for _, r := range batch.Failed(results) {
		a.logger.Warn(fmt.Sprintf("%s of %d files failed: %v", action, len(r.Items), r.Err))
	}
}

func absRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkspaceRootNotFound.Error()), "root", root)
	}
	return abs, nil
}

func applyOptions(cfg domain.Config, opts RunOptions) (domain.Config, error) {
	if opts.Mode != "" {
		mode, err := domain.ParseMode(opts.Mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if opts.Parallelism > 0 {
		cfg.Parallelism = opts.Parallelism
	}
	if opts.Source != "" {
		cfg.Registry.Source = opts.Source
	}
	if opts.NoCache {
		cfg.Cache = false
	}
	if opts.Checkout {
		cfg.Checkout.Enabled = true
	}
	return cfg, nil
}
