// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
)

// A Cycle is an infinite, restartable sequence that repeats a fixed
// list of colours. It is used to assign colours round-robin to an
// unbounded number of series.
//
// A Cycle is not safe for concurrent use by multiple goroutines.
type Cycle struct {
	hexes []string
	next  int
}

// NewCycle returns a Cycle over hexes. An empty Cycle yields "" forever.
func NewCycle(hexes ...string) *Cycle {
	return &Cycle{hexes: append([]string(nil), hexes...)}
}

// Next returns the next colour in the cycle.
func (c *Cycle) Next() string {
	if len(c.hexes) == 0 {
		return ""
	}
	hex := c.hexes[c.next]
	c.next = (c.next + 1) % len(c.hexes)
	return hex
}

// Take returns the next n colours. It returns nil if n <= 0.
func (c *Cycle) Take(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = c.Next()
	}
	return out
}

// Reset restarts the cycle at its first colour.
func (c *Cycle) Reset() {
	c.next = 0
}

// Len returns the length of one period of the cycle.
func (c *Cycle) Len() int {
	return len(c.hexes)
}

// Hexes returns one period of the cycle.
func (c *Cycle) Hexes() []string {
	return append([]string(nil), c.hexes...)
}

// Colors returns one period of the cycle as colors. Values that are
// not valid hex strings are skipped.
func (c *Cycle) Colors() []color.Color {
	out := make([]color.Color, 0, len(c.hexes))
	for _, hex := range c.hexes {
		rgba, err := ParseHex(hex)
		if err != nil {
			continue
		}
		out = append(out, rgba)
	}
	return out
}

// Ranger returns a gg.DiscreteRanger over the cycle's colours. When an
// ordinal scale has more levels than the cycle, gg wraps around, so
// series are coloured round-robin the same way Next does.
func (c *Cycle) Ranger() gg.DiscreteRanger {
	return gg.NewColorRanger(c.Colors())
}
