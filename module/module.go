/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package module

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/suparena/componentstore/errors"
)

// Module is a loaded manifest together with the files it ships.
type Module struct {
	Manifest *Manifest
	Source   FileSource
}

func (m *Module) ID() string { return m.Manifest.ID }

func (m *Module) String() string {
	if m.Manifest.Version == "" {
		return m.Manifest.ID
	}
	return m.Manifest.ID + "-" + m.Manifest.Version
}

// Load reads the manifest at the root of source.
func Load(source FileSource) (*Module, error) {
	ref, ok := source.File(ManifestFile)
	if !ok {
		return nil, errors.NewNotFoundError("module manifest", fmt.Sprint(source))
	}
	rc, err := ref.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer rc.Close()

	m, err := ParseManifest(rc)
	if err != nil {
		return nil, err
	}
	return &Module{Manifest: m, Source: source}, nil
}

// LoadDir is Load for a DirectorySource over dir.
func LoadDir(dir string) (*Module, error) {
	src, err := NewDirectorySource(dir, nil)
	if err != nil {
		return nil, err
	}
	return Load(src)
}

// DiscoverOption configures Discover.
type DiscoverOption func(*discoverConfig)

type discoverConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger Discover reports skipped directories to.
func WithLogger(logger *slog.Logger) DiscoverOption {
	return func(c *discoverConfig) {
		c.logger = logger
	}
}

// Discover loads every direct sub-directory of root holding a manifest, in
// directory name order. Directories without a manifest are skipped.
func Discover(ctx context.Context, root string, opts ...DiscoverOption) ([]*Module, error) {
	cfg := discoverConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := NewDirectorySource(root, nil)
	if err != nil {
		return nil, err
	}
	dirs, err := src.Subpaths()
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)

	var modules []*Module
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := src.File(dir, ManifestFile); !ok {
			cfg.logger.Debug("Skipping directory without manifest.", "dir", dir)
			continue
		}
		m, err := LoadDir(filepath.Join(src.Root(), dir))
		if err != nil {
			return nil, fmt.Errorf("failed to load module %s: %w", dir, err)
		}
		cfg.logger.Info("Discovered module.", "module", m.String(), "components", len(m.Manifest.Components))
		modules = append(modules, m)
	}
	return modules, nil
}
