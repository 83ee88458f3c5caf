// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"sort"
	"sync"
)

// A Store is a set of colormaps keyed by full name. It is safe for
// concurrent use.
type Store struct {
	mu   sync.RWMutex
	maps map[string]*Colormap
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{maps: make(map[string]*Colormap)}
}

// Register adds c under c.Name() unless that name is already present.
// It reports whether c was added.
func (s *Store) Register(c *Colormap) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[c.Name()]; ok {
		return false
	}
	s.maps[c.Name()] = c
	return true
}

// Lookup returns the colormap registered as name.
func (s *Store) Lookup(name string) (*Colormap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.maps[name]
	return c, ok
}

// Names returns every registered name in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.maps))
	for name := range s.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered colormaps.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}
