// Package nuget queries packages through the nuget command line tool.
package nuget

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PackageRegistry        = (*Registry)(nil)
	_ ports.PackageRegistryFactory = (*Factory)(nil)
)

var (
	// Successfully installed 'Newtonsoft.Json 13.0.1' to C:\tmp
	installedRe = regexp.MustCompile(`Successfully installed '([^' ]+) ([^']+)'`)
	// Package "Newtonsoft.Json.13.0.1" is already installed.
	alreadyRe = regexp.MustCompile(`Package "([^"]+)" is already installed`)
	// Added package 'Newtonsoft.Json.13.0.1' to folder 'C:\tmp'
	addedRe = regexp.MustCompile(`Added package '([^']+)' to folder`)

	// Splits "Some.Package.1.2.3-beta" into name and version.
	folderRe = regexp.MustCompile(`^(.+?)\.(\d+(?:\.\d+)+(?:-[0-9A-Za-z.-]+)?)$`)
)

// Factory builds registries sharing one executor.
type Factory struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor, log ports.Logger) *Factory {
	return &Factory{executor: executor, logger: log}
}

// NewRegistry returns a registry using the configured tool.
func (f *Factory) NewRegistry(cfg domain.RegistryConfig) ports.PackageRegistry {
	return NewRegistry(f.executor, f.logger, cfg)
}

// Registry implements ports.PackageRegistry by running "nuget install".
type Registry struct {
	executor ports.Executor
	logger   ports.Logger
	cfg      domain.RegistryConfig
}

// NewRegistry creates a new Registry.
func NewRegistry(executor ports.Executor, log ports.Logger, cfg domain.RegistryConfig) *Registry {
	if cfg.Command == "" {
		cfg.Command = "nuget"
	}
	return &Registry{executor: executor, logger: log, cfg: cfg}
}

// Fetch installs key and its dependencies into outDir and reports every
// package the tool placed there.
func (r *Registry) Fetch(ctx context.Context, key domain.PackageKey, outDir string) ([]domain.PackageRef, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	args := []string{
		r.cfg.Command, "install", key.Name,
		"-Version", key.Version,
		"-OutputDirectory", outDir,
		"-NonInteractive",
		"-DirectDownload",
	}
	if r.cfg.Source != "" {
		args = append(args, "-Source", r.cfg.Source)
	}

	var out bytes.Buffer
	stdout, stderr := io.Writer(&out), io.Discard
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(&out, v.Stdout())
		stderr = v.Stderr()
	}

	runErr := r.executor.Run(ctx, ports.Command{Args: args, Dir: outDir}, stdout, stderr)

	refs := existing(parseInstallOutput(out.String(), outDir))
	if len(refs) == 0 {
		// Older tool versions print nothing useful; fall back to the expected folder.
		refs = existing([]domain.PackageRef{{PackageKey: key, Dir: filepath.Join(outDir, key.Name+"."+key.Version)}})
	}

	if runErr != nil {
		err := zerr.Wrap(runErr, domain.ErrRegistryQueryFailed.Error())
		err = zerr.With(err, "package", key.Name)
		err = zerr.With(err, "version", key.Version)
		return refs, err
	}

	return refs, nil
}

// parseInstallOutput extracts the packages named in the tool's output.
func parseInstallOutput(output, outDir string) []domain.PackageRef {
	var refs []domain.PackageRef
	seen := make(map[domain.PackageKey]bool)

	add := func(name, version string) {
		key := domain.PackageKey{Name: name, Version: version}
		if seen[key.Normalized()] {
			return
		}
		seen[key.Normalized()] = true
		refs = append(refs, domain.PackageRef{
			PackageKey: key,
			Dir:        filepath.Join(outDir, name+"."+version),
		})
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if m := installedRe.FindStringSubmatch(line); m != nil {
			add(m[1], m[2])
			continue
		}

		var folder string
		if m := alreadyRe.FindStringSubmatch(line); m != nil {
			folder = m[1]
		} else if m := addedRe.FindStringSubmatch(line); m != nil {
			folder = m[1]
		}
		if folder == "" {
			continue
		}
		if m := folderRe.FindStringSubmatch(folder); m != nil {
			add(m[1], m[2])
		}
	}

	return refs
}

func existing(refs []domain.PackageRef) []domain.PackageRef {
	out := refs[:0]
	for _, ref := range refs {
		if info, err := os.Stat(ref.Dir); err == nil && info.IsDir() {
			out = append(out, ref)
		}
	}
	return out
}
