// Package config provides the configuration loader for rebind.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a loader reading rebind.yaml.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName, Logger: log}
}

// Load reads the configuration from the given workspace root.
func (l *FileConfigLoader) Load(root string) (domain.Config, error) {
	path := filepath.Join(root, l.Filename)

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		if l.Logger != nil {
			l.Logger.Debug("no " + l.Filename + " found, using defaults")
		}
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// Load reads a configuration file from the given path and applies it over the defaults.
func Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := file.apply(domain.DefaultConfig())
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (f *File) apply(cfg domain.Config) (domain.Config, error) {
	mode, err := domain.ParseMode(f.Mode)
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode

	cfg.Exclude = append(cfg.Exclude, f.Exclude...)
	cfg.Frameworks = append(cfg.Frameworks, f.Frameworks...)

	if f.Parallelism != nil {
		if *f.Parallelism < 1 {
			return cfg, zerr.With(domain.ErrConfigParseFailed, "parallelism", *f.Parallelism)
		}
		cfg.Parallelism = *f.Parallelism
	}
	if f.Cache != nil {
		cfg.Cache = *f.Cache
	}

	if r := f.Registry; r != nil {
		if r.Command != "" {
			cfg.Registry.Command = r.Command
		}
		cfg.Registry.Source = r.Source
		if r.Timeout != "" {
			d, err := time.ParseDuration(r.Timeout)
			if err != nil {
				return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "registry.timeout", r.Timeout)
			}
			cfg.Registry.Timeout = d
		}
	}

	if c := f.Checkout; c != nil {
		cfg.Checkout.Enabled = c.Enabled
		if len(c.Edit) > 0 {
			cfg.Checkout.Edit = c.Edit
		}
		if len(c.Add) > 0 {
			cfg.Checkout.Add = c.Add
		}
		if c.BatchSize > 0 {
			cfg.Checkout.BatchSize = c.BatchSize
		}
	}

	return cfg, nil
}
