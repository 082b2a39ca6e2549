// Package resolver maps package releases to assembly identities, querying the
// package registry at most once per release.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.IdentityResolver = (*Client)(nil)

// Options configures a Client.
type Options struct {
	// Root is the workspace root the identity store is keyed under.
	Root string

	// ScratchDir is the parent of the per-query download directories.
	// Defaults to a "rebind" folder in the system temp directory.
	ScratchDir string

	// Store persists identities across runs. Nil disables it.
	Store ports.IdentityStore
}

// DefaultScratchDir returns the parent of the download directories used when
// Options.ScratchDir is empty.
func DefaultScratchDir() string {
	return filepath.Join(os.TempDir(), "rebind")
}

// Client resolves identities and owns the run's positive and negative caches.
// Only the Client writes them.
type Client struct {
	registry  ports.PackageRegistry
	inspector ports.ArtifactInspector
	telemetry ports.Telemetry
	logger    ports.Logger
	opts      Options

	flight singleflight.Group

	mu       sync.RWMutex
	resolved map[domain.PackageKey]domain.Identity
	failed   map[domain.PackageKey]domain.PackageKey
}

// NewClient creates a Client with empty caches.
func NewClient(
	registry ports.PackageRegistry,
	inspector ports.ArtifactInspector,
	telemetry ports.Telemetry,
	logger ports.Logger,
	opts Options,
) *Client {
	if opts.ScratchDir == "" {
		opts.ScratchDir = DefaultScratchDir()
	}
	return &Client{
		registry:  registry,
		inspector: inspector,
		telemetry: telemetry,
		logger:    logger,
		opts:      opts,
		resolved:  make(map[domain.PackageKey]domain.Identity),
		failed:    make(map[domain.PackageKey]domain.PackageKey),
	}
}

type outcome struct {
	id domain.Identity
	ok bool
}

// Resolve returns the identity of name at version. Cached outcomes, positive
// or negative, are returned without a query. Concurrent calls for the same
// release share one query.
func (c *Client) Resolve(ctx context.Context, name, version string) (domain.Identity, bool) {
	key := domain.PackageKey{Name: name, Version: version}
	norm := key.Normalized()

	if id, ok, known := c.lookup(norm); known {
		return id, ok
	}

	v, _, _ := c.flight.Do(norm.String(), func() (any, error) {
		if id, ok, known := c.lookup(norm); known {
			return outcome{id: id, ok: ok}, nil
		}
		return c.query(ctx, key), nil
	})

	o, _ := v.(outcome)
	return o.id, o.ok
}

// Resolved returns a copy of the positive cache.
func (c *Client) Resolved() map[domain.PackageKey]domain.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[domain.PackageKey]domain.Identity, len(c.resolved))
	for k, v := range c.resolved {
		out[k] = v
	}
	return out
}

// Skipped returns the releases that could not be resolved, sorted.
func (c *Client) Skipped() []domain.PackageKey {
	c.mu.RLock()
	out := make([]domain.PackageKey, 0, len(c.failed))
	for _, k := range c.failed {
		out = append(out, k)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.PackageKey) int {
		if n := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); n != 0 {
			return n
		}
		return domain.CompareVersions(a.Version, b.Version)
	})
	return out
}

// lookup consults the in-memory caches. known is false when neither holds key.
func (c *Client) lookup(norm domain.PackageKey) (id domain.Identity, ok, known bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id, hit := c.resolved[norm]; hit {
		return id, true, true
	}
	if _, hit := c.failed[norm]; hit {
		return domain.Identity{}, false, true
	}
	return domain.Identity{}, false, false
}

func (c *Client) query(ctx context.Context, key domain.PackageKey) outcome {
	norm := key.Normalized()

	ctx, vertex := c.telemetry.Record(ctx, "resolve "+key.String(), ports.WithGroup("resolve"))

	if id, ok := c.fromStore(key); ok {
		c.remember(norm, id)
		vertex.Cached()
		vertex.Complete(nil)
		return outcome{id: id, ok: true}
	}

	err := c.download(ctx, key)
	if id, ok, _ := c.lookup(norm); ok {
		vertex.Complete(nil)
		return outcome{id: id, ok: true}
	}

	if err == nil {
		err = zerr.With(domain.ErrAssemblyNotFound, "package", key.String())
	}
	c.logger.Debug(fmt.Sprintf("cannot resolve %s: %v", key, err))

	c.mu.Lock()
	c.failed[norm] = key
	c.mu.Unlock()

	vertex.Complete(err)
	return outcome{}
}

// download fetches key into a fresh scratch directory and inspects every
// package found there. It returns the last failure that explains a miss.
func (c *Client) download(ctx context.Context, key domain.PackageKey) error {
	dir := filepath.Join(c.opts.ScratchDir, uuid.NewString())
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrScratchDirFailed.Error()), "path", dir)
		c.logger.Warn(err.Error())
		return err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			c.logger.Warn(fmt.Sprintf("cannot remove scratch directory %s: %v", dir, err))
		}
	}()

	refs, err := c.registry.Fetch(ctx, key, dir)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("registry query for %s failed: %v", key, err))
		return err
	}

	var lastErr error
	for _, ref := range refs {
		if strings.EqualFold(ref.Name, key.Name) && ref.Version != key.Version {
			c.logger.Debug(fmt.Sprintf("ignoring %s while resolving %s", ref.PackageKey, key))
			continue
		}

		id, err := c.inspector.Inspect(ref)
		if err != nil {
			if strings.EqualFold(ref.Name, key.Name) {
				lastErr = err
			}
			c.logger.Debug(fmt.Sprintf("cannot inspect %s: %v", ref.PackageKey, err))
			continue
		}
		c.learn(ref.PackageKey, id)
	}
	return lastErr
}

// learn caches an identity found during a query. Releases already known to
// be unresolvable stay that way.
func (c *Client) learn(key domain.PackageKey, id domain.Identity) {
	norm := key.Normalized()

	c.mu.Lock()
	_, failed := c.failed[norm]
	_, known := c.resolved[norm]
	if !failed && !known {
		c.resolved[norm] = id
	}
	c.mu.Unlock()

	if failed || known || c.opts.Store == nil {
		return
	}
	if err := c.opts.Store.Put(c.opts.Root, key, id); err != nil {
		c.logger.Warn(fmt.Sprintf("cannot cache identity of %s: %v", key, err))
	}
}

func (c *Client) remember(norm domain.PackageKey, id domain.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.resolved[norm]; !ok {
		c.resolved[norm] = id
	}
}

func (c *Client) fromStore(key domain.PackageKey) (domain.Identity, bool) {
	if c.opts.Store == nil {
		return domain.Identity{}, false
	}

	id, ok, err := c.opts.Store.Get(c.opts.Root, key)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("ignoring cached identity of %s: %v", key, err))
		return domain.Identity{}, false
	}
	if ok {
		c.logger.Debug("cache hit: " + key.String())
	}
	return id, ok
}
