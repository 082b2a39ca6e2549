// Package reconciler chooses one version per package and attaches resolved
// identities to every project usage.
package reconciler

import (
	"context"
	"fmt"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Engine runs the reconciliation. It is the only writer of the workspace map.
type Engine struct {
	logger ports.Logger
}

// New creates a new Engine.
func New(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Options configures a reconciliation.
type Options struct {
	Mode domain.Mode

	// Parallelism bounds concurrent resolutions in the workspace pass.
	Parallelism int
}

// Reconcile selects versions according to the mode, resolves every distinct
// workspace release, then resolves each project usage. Releases that cannot
// be resolved are reported as skipped; they never fail the run.
func (e *Engine) Reconcile(
	ctx context.Context,
	ws *domain.Workspace,
	resolver ports.IdentityResolver,
	opts Options,
) (*domain.Report, error) {
	report := &domain.Report{
		Mode:     opts.Mode,
		Projects: len(ws.Projects),
		Packages: ws.Packages.Len(),
	}

	switch opts.Mode {
	case domain.ModeAligned:
		report.Raised = e.align(ws)
	case domain.ModeExplicit:
	default:
		return nil, zerr.With(domain.ErrInvalidMode, "mode", string(opts.Mode))
	}

	if err := e.resolveWorkspace(ctx, ws, resolver, opts.Parallelism); err != nil {
		return nil, zerr.Wrap(err, domain.ErrReconcileFailed.Error())
	}

	e.resolveProjects(ctx, ws, resolver, report)

	report.Sort()
	return report, nil
}

// align raises every project usage to the workspace version when that is
// greater. A usage that only carries a range gets the workspace version too.
func (e *Engine) align(ws *domain.Workspace) int {
	var raised int
	for _, project := range ws.Projects {
		for _, usage := range project.Usages.All() {
			shared, ok := ws.Packages.Get(usage.Name)
			if !ok || shared.Version == "" {
				continue
			}
			if domain.CompareVersions(shared.Version, usage.Version) > 0 {
				e.logger.Debug(fmt.Sprintf("%s: raising %s from %q to %s", project.Name(), usage.Name, usage.Version, shared.Version))
				usage.SetVersion(shared.Version)
				raised++
			}
		}
	}
	return raised
}

// resolveWorkspace resolves every distinct workspace release. It completes
// before any project usage is looked at.
func (e *Engine) resolveWorkspace(ctx context.Context, ws *domain.Workspace, resolver ports.IdentityResolver, parallelism int) error {
	records := ws.Packages.All()
	ids := make([]domain.Identity, len(records))
	oks := make([]bool, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))

	for i, record := range records {
		if record.Version == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ids[i], oks[i] = resolver.Resolve(gctx, record.Name, record.Version)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, record := range records {
		switch {
		case record.Version == "":
		case oks[i]:
			record.Resolve(ids[i])
		default:
			record.MarkUnresolvable()
		}
	}
	return nil
}

// resolveProjects copies identities onto project usages. Pairs the
// workspace pass did not see are resolved here; cached failures are not
// retried.
func (e *Engine) resolveProjects(ctx context.Context, ws *domain.Workspace, resolver ports.IdentityResolver, report *domain.Report) {
	reconciled := make(map[domain.PackageKey]struct{})

	for _, project := range ws.Projects {
		for _, usage := range project.Usages.All() {
			if usage.Version == "" {
				e.logger.Debug(fmt.Sprintf("%s: %s has no version, leaving it unresolved", project.Name(), usage.Name))
				continue
			}

			id, ok := resolver.Resolve(ctx, usage.Name, usage.Version)
			if !ok {
				usage.MarkUnresolvable()
				report.Skip(usage.Key())
				continue
			}

			usage.Resolve(id)
			norm := usage.Key().Normalized()
			if _, seen := reconciled[norm]; !seen {
				reconciled[norm] = struct{}{}
				report.Reconciled = append(report.Reconciled, usage.Key())
			}
		}
	}
}
