// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import "sync"

// A State holds the currently applied style parameters. It is safe for
// concurrent use, but Push and Context assume properly nested use: a
// restore puts back exactly the parameters that were current when the
// matching Push was called.
type State struct {
	mu       sync.Mutex
	defaults Params
	params   Params
}

// NewState returns a State whose current parameters are a copy of
// defaults.
func NewState(defaults Params) *State {
	if defaults == nil {
		defaults = Params{}
	}
	return &State{defaults: defaults.Copy(), params: defaults.Copy()}
}

// Params returns a copy of the current parameters.
func (s *State) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Copy()
}

// Get returns the current value of key.
func (s *State) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.params[key]
	return v, ok
}

// Use applies sheets in order. Keys a sheet does not set keep their
// current values.
func (s *State) Use(sheets ...*Sheet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(sheets)
}

func (s *State) apply(sheets []*Sheet) {
	for _, sheet := range sheets {
		for k, v := range sheet.Params {
			s.params[k] = v
		}
	}
}

// Reset restores the parameters s was created with.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = s.defaults.Copy()
}

// Push applies sheets and returns a function that restores the
// parameters that were current before Push. Calling the returned
// function more than once has no further effect.
//
//	defer state.Push(style.Callosum())()
func (s *State) Push(sheets ...*Sheet) (restore func()) {
	s.mu.Lock()
	saved := s.params.Copy()
	s.apply(sheets)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.params = saved
			s.mu.Unlock()
		})
	}
}

// Context calls fn with sheet applied and then restores the previous
// parameters, whether fn returns normally, returns an error, or
// panics.
func (s *State) Context(sheet *Sheet, fn func() error) error {
	defer s.Push(sheet)()
	return fn()
}
