/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package module

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/suparena/componentstore/errors"
)

// FileRef is one file exposed by a FileSource.
type FileRef interface {
	// Name is the base name of the file.
	Name() string
	// Path is the directory of the file relative to the source root.
	Path() []string
	Open() (io.ReadCloser, error)
}

// FileSource exposes the files of a module. Paths are given as elements and
// are always relative to the source root; a path escaping the root yields no
// result.
type FileSource interface {
	Files() ([]FileRef, error)
	File(path ...string) (FileRef, bool)
	FilesInPath(recursive bool, path ...string) ([]FileRef, error)
	Subpaths(path ...string) ([]string, error)
}

// DefaultFilter hides Go source files.
func DefaultFilter(name string) bool {
	return !strings.HasSuffix(name, ".go")
}

// DirectorySource reads a module from a directory on disk.
type DirectorySource struct {
	root   string
	fsys   fs.FS
	filter func(name string) bool
}

// NewDirectorySource opens root. A nil filter means DefaultFilter.
func NewDirectorySource(root string, filter func(name string) bool) (*DirectorySource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewInvalidModulePathError(root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.NewInvalidModulePathError(root, err)
	}
	if !info.IsDir() {
		return nil, errors.NewInvalidModulePathError(root, fmt.Errorf("not a directory"))
	}
	if filter == nil {
		filter = DefaultFilter
	}
	return &DirectorySource{root: abs, fsys: os.DirFS(abs), filter: filter}, nil
}

// Root returns the absolute directory the source reads from.
func (d *DirectorySource) Root() string { return d.root }

func (d *DirectorySource) String() string { return d.root }

func (d *DirectorySource) Files() ([]FileRef, error) {
	return d.FilesInPath(true)
}

func (d *DirectorySource) File(parts ...string) (FileRef, bool) {
	p, ok := within(parts)
	if !ok || p == "." {
		return nil, false
	}
	info, err := fs.Stat(d.fsys, p)
	if err != nil || !info.Mode().IsRegular() || !d.filter(info.Name()) {
		return nil, false
	}
	return &fileRef{fsys: d.fsys, path: p}, true
}

func (d *DirectorySource) FilesInPath(recursive bool, parts ...string) ([]FileRef, error) {
	dir, ok := within(parts)
	if !ok {
		return nil, nil
	}

	var refs []FileRef
	err := fs.WalkDir(d.fsys, dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if p != dir && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if entry.Type().IsRegular() && d.filter(entry.Name()) {
			refs = append(refs, &fileRef{fsys: d.fsys, path: p})
		}
		return nil
	})
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path.Join(d.root, dir), err)
	}
	return refs, nil
}

func (d *DirectorySource) Subpaths(parts ...string) ([]string, error) {
	dir, ok := within(parts)
	if !ok {
		return nil, nil
	}
	entries, err := fs.ReadDir(d.fsys, dir)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path.Join(d.root, dir), err)
	}

	var subpaths []string
	for _, e := range entries {
		if e.IsDir() {
			subpaths = append(subpaths, e.Name())
		}
	}
	return subpaths, nil
}

// within joins path elements and reports whether the result stays inside the root.
func within(parts []string) (string, bool) {
	p := path.Join(parts...)
	if p == "" {
		p = "."
	}
	return p, fs.ValidPath(p)
}

type fileRef struct {
	fsys fs.FS
	path string
}

func (f *fileRef) Name() string { return path.Base(f.path) }

func (f *fileRef) Path() []string {
	dir := path.Dir(f.path)
	if dir == "." {
		return []string{}
	}
	return strings.Split(dir, "/")
}

func (f *fileRef) Open() (io.ReadCloser, error) {
	return f.fsys.Open(f.path)
}

func (f *fileRef) String() string { return f.path }

// CompositeSource presents several sources as one. File returns the first
// match in source order.
type CompositeSource struct {
	sources []FileSource
}

func NewCompositeSource(sources ...FileSource) *CompositeSource {
	return &CompositeSource{sources: append([]FileSource(nil), sources...)}
}

func (c *CompositeSource) Files() ([]FileRef, error) {
	var refs []FileRef
	for _, s := range c.sources {
		found, err := s.Files()
		if err != nil {
			return nil, err
		}
		refs = append(refs, found...)
	}
	return refs, nil
}

func (c *CompositeSource) File(parts ...string) (FileRef, bool) {
	for _, s := range c.sources {
		if ref, ok := s.File(parts...); ok {
			return ref, true
		}
	}
	return nil, false
}

func (c *CompositeSource) FilesInPath(recursive bool, parts ...string) ([]FileRef, error) {
	var refs []FileRef
	for _, s := range c.sources {
		found, err := s.FilesInPath(recursive, parts...)
		if err != nil {
			return nil, err
		}
		refs = append(refs, found...)
	}
	return refs, nil
}

// Subpaths returns the union of the sources' subpaths, sorted.
func (c *CompositeSource) Subpaths(parts ...string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, s := range c.sources {
		found, err := s.Subpaths(parts...)
		if err != nil {
			return nil, err
		}
		for _, name := range found {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
