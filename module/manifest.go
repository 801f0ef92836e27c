/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package module

import (
	stderrors "errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suparena/componentstore/errors"
)

// ManifestFile is the manifest name looked up at the root of a module.
const ManifestFile = "module.yaml"

// Dependency names another module this one needs.
type Dependency struct {
	ID       string `yaml:"id"`
	Optional bool   `yaml:"optional,omitempty"`
}

// Manifest is the module.yaml document.
//
//	id: modulef
//	version: 1.0.0
//	dependencies:
//	  - id: core
//	components:
//	  - modulef:Sprite
type Manifest struct {
	ID           string       `yaml:"id"`
	Version      string       `yaml:"version"`
	DisplayName  string       `yaml:"displayName,omitempty"`
	Description  string       `yaml:"description,omitempty"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	Components   []string     `yaml:"components,omitempty"`
}

// ParseManifest decodes and validates one manifest. Unknown keys are rejected.
func ParseManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewValidationError("manifest", "empty manifest")
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for missing or conflicting entries.
func (m *Manifest) Validate() error {
	if m.ID == "" {
		return errors.NewValidationError("id", "module id is required")
	}

	deps := make(map[string]bool, len(m.Dependencies))
	for _, d := range m.Dependencies {
		switch {
		case d.ID == "":
			return errors.NewValidationError("dependencies", fmt.Sprintf("module %s: dependency without id", m.ID))
		case d.ID == m.ID:
			return errors.NewValidationError("dependencies", fmt.Sprintf("module %s depends on itself", m.ID))
		case deps[d.ID]:
			return errors.NewValidationError("dependencies", fmt.Sprintf("module %s: duplicate dependency %s", m.ID, d.ID))
		}
		deps[d.ID] = true
	}

	components := make(map[string]bool, len(m.Components))
	for _, name := range m.Components {
		if name == "" || components[name] {
			return errors.NewValidationError("components", fmt.Sprintf("module %s: empty or duplicate component %q", m.ID, name))
		}
		components[name] = true
	}
	return nil
}
