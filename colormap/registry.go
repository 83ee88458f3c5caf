// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strings"

	"github.com/corpus-callosum/callosum/internal/lookup"
	"github.com/corpus-callosum/callosum/palette"
)

// NotFoundError is returned by Registry.Get for unknown short names.
type NotFoundError = lookup.NotFoundError

// Prefix namespaces the Callosum colormaps in a Store.
const Prefix = "callosum"

const reverseSuffix = "_r"

// A Definition describes a colormap by its short name and stops.
type Definition struct {
	Name   string   // short name, e.g. "blues"
	Stops  []string // "#RRGGBB", at least 2
	Interp Interpolation
}

// definitions lists the brand colormaps as palette colour names. Add
// new colormaps here.
var definitions = []struct {
	name   string
	colors []string
}{
	{"default", []string{"deep_blue", "royal_blue", "pale_blue", "pale_green"}},
	{"blues", []string{"deep_blue", "royal_blue", "pale_blue"}},
	{"greens", []string{"deep_green", "royal_green", "pale_green"}},
	{"purples", []string{"purple_brown", "royal_purple", "pale_purple"}},
}

// Definitions returns the brand colormap definitions with stops taken
// from p.
func Definitions(p *palette.Palette) ([]Definition, error) {
	defs := make([]Definition, 0, len(definitions))
	for _, d := range definitions {
		stops := make([]string, len(d.colors))
		for i, name := range d.colors {
			hex, err := p.Get(name)
			if err != nil {
				return nil, fmt.Errorf("colormap %q: %w", d.name, err)
			}
			stops[i] = hex
		}
		defs = append(defs, Definition{Name: d.name, Stops: stops})
	}
	return defs, nil
}

// A Registry names colormaps in a Store as "<prefix>_<short name>",
// with reversed variants suffixed "_r".
type Registry struct {
	prefix string
	store  *Store
}

// NewRegistry returns a Registry over store. If prefix is "", Prefix
// is used.
func NewRegistry(prefix string, store *Store) *Registry {
	if prefix == "" {
		prefix = Prefix
	}
	return &Registry{prefix, store}
}

// Store returns the underlying Store.
func (r *Registry) Store() *Store {
	return r.store
}

// FullName returns the store key for short name.
func (r *Registry) FullName(short string, reverse bool) string {
	name := r.prefix + "_" + short
	if reverse {
		name += reverseSuffix
	}
	return name
}

// RegisterAll builds a forward and a reversed Colormap for each
// definition and adds them to the store. Names that are already
// registered are left alone, so RegisterAll may be called any number
// of times. It returns the number of colormaps added.
//
// An invalid definition stops registration with an error; colormaps
// from earlier definitions remain registered.
func (r *Registry) RegisterAll(defs []Definition) (int, error) {
	added := 0
	for _, d := range defs {
		fwdName, revName := r.FullName(d.Name, false), r.FullName(d.Name, true)
		_, haveFwd := r.store.Lookup(fwdName)
		_, haveRev := r.store.Lookup(revName)
		if haveFwd && haveRev {
			continue
		}
		cm, err := NewInterpolated(fwdName, d.Interp, d.Stops...)
		if err != nil {
			return added, err
		}
		for _, c := range []*Colormap{cm, cm.Reversed(revName)} {
			if r.store.Register(c) {
				added++
			}
		}
	}
	return added, nil
}

// Get returns the colormap with the given short name, or its reversed
// variant if reverse is true.
func (r *Registry) Get(short string, reverse bool) (*Colormap, error) {
	name := r.FullName(short, reverse)
	if c, ok := r.store.Lookup(name); ok {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "colormap", Name: name, Available: r.List()}
}

// Lookup resolves a full store name such as "callosum_blues_r". It
// is how style sheets refer to colormaps.
func (r *Registry) Lookup(full string) (*Colormap, error) {
	if c, ok := r.store.Lookup(full); ok {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "colormap", Name: full, Available: r.List()}
}

// List returns the short names of the registered forward colormaps,
// in sorted order.
func (r *Registry) List() []string {
	prefix := r.prefix + "_"
	var names []string
	for _, name := range r.store.Names() {
		if !strings.HasPrefix(name, prefix) || strings.HasSuffix(name, reverseSuffix) {
			continue
		}
		names = append(names, strings.TrimPrefix(name, prefix))
	}
	return names
}
