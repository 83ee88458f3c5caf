// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts keeps track of font files available to plots.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// Extensions lists the file extensions AddDir considers.
var Extensions = []string{".otf", ".ttf"}

// A Face describes one registered font file.
type Face struct {
	Path      string
	Family    string // e.g. "Callosum Sans"
	Subfamily string // e.g. "Bold Italic"
}

// A Manager is a set of registered fonts. Adding the same path twice
// is a no-op. A Manager is safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	faces  []Face
	byPath map[string]int
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{byPath: make(map[string]int)}
}

// AddFont registers the font file at path.
func (m *Manager) AddFont(path string) error {
	path = filepath.Clean(path)
	if m.has(path) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.AddFontData(path, data)
}

// AddFontData registers a font from memory under the key path.
func (m *Manager) AddFontData(path string, data []byte) error {
	face, err := parse(path, data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byPath[path]; ok {
		return nil
	}
	m.byPath[path] = len(m.faces)
	m.faces = append(m.faces, face)
	return nil
}

// AddDir registers every font file directly in dir, in sorted order.
// It keeps going after a bad file and returns the number of files it
// added along with any errors.
func (m *Manager) AddDir(dir string) (int, error) {
	var paths []string
	for _, ext := range Extensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return 0, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		if _, err := os.Stat(dir); err != nil {
			return 0, err
		}
	}
	sort.Strings(paths)

	n := 0
	var errs []error
	for _, path := range paths {
		before := m.Len()
		if err := m.AddFont(path); err != nil {
			errs = append(errs, err)
			continue
		}
		if m.Len() > before {
			n++
		}
	}
	return n, errors.Join(errs...)
}

func (m *Manager) has(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byPath[path]
	return ok
}

// Len returns the number of registered font files.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.faces)
}

// Faces returns the registered fonts in registration order.
func (m *Manager) Faces() []Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Face(nil), m.faces...)
}

// Families returns the distinct registered family names, sorted.
func (m *Manager) Families() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, f := range m.faces {
		if !seen[f.Family] {
			seen[f.Family] = true
			out = append(out, f.Family)
		}
	}
	sort.Strings(out)
	return out
}

// Has reports whether a font of the given family is registered.
func (m *Manager) Has(family string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.faces {
		if f.Family == family {
			return true
		}
	}
	return false
}

func parse(path string, data []byte) (Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return Face{}, fmt.Errorf("%s: %w", path, err)
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return Face{}, fmt.Errorf("%s: reading family name: %w", path, err)
	}
	// Subfamily is optional.
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	return Face{Path: path, Family: family, Subfamily: sub}, nil
}
