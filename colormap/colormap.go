// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap builds continuous colormaps from Callosum brand
// colours and keeps them in a named registry.
//
// A Colormap implements go-gg's palette.Continuous, so it can be used
// anywhere gg expects a continuous palette, and Ranger adapts it to a
// gg scale.
package colormap

import (
	"fmt"
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"github.com/corpus-callosum/callosum/palette"
	"github.com/lucasb-eyer/go-colorful"
)

// Interpolation selects the colour space a Colormap blends in.
type Interpolation int

const (
	// RGB interpolates linearly between sRGB components.
	RGB Interpolation = iota

	// Lab interpolates in CIE L*a*b*, which is closer to
	// perceptually uniform.
	Lab

	// LinearLight interpolates in linear RGB intensity.
	LinearLight
)

func (i Interpolation) String() string {
	switch i {
	case RGB:
		return "rgb"
	case Lab:
		return "lab"
	case LinearLight:
		return "linear-light"
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// A Colormap maps positions in [0, 1] to colours by interpolating
// between evenly spaced stops. Colormaps are immutable.
type Colormap struct {
	name     string
	hexes    []string
	stops    []colorful.Color
	interp   Interpolation
	reversed bool
}

var _ ggpalette.Continuous = (*Colormap)(nil)

// New returns a Colormap named name that interpolates between stops
// using RGB interpolation. There must be at least two stops, each a
// "#RRGGBB" string.
func New(name string, stops ...string) (*Colormap, error) {
	return NewInterpolated(name, RGB, stops...)
}

// NewInterpolated is like New but selects the interpolation.
func NewInterpolated(name string, interp Interpolation, stops ...string) (*Colormap, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least 2 stops, have %d", name, len(stops))
	}
	switch interp {
	case RGB, Lab, LinearLight:
	default:
		return nil, fmt.Errorf("colormap %q: unknown interpolation %v", name, interp)
	}
	c := &Colormap{
		name:   name,
		hexes:  append([]string(nil), stops...),
		stops:  make([]colorful.Color, len(stops)),
		interp: interp,
	}
	for i, hex := range stops {
		rgba, err := palette.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colormap %q: %w", name, err)
		}
		c.stops[i], _ = colorful.MakeColor(rgba)
	}
	return c, nil
}

// Name returns the full registered name of c.
func (c *Colormap) Name() string {
	return c.name
}

// Interpolation returns the colour space c blends in.
func (c *Colormap) Interpolation() Interpolation {
	return c.interp
}

// IsReversed reports whether c was produced by Reversed.
func (c *Colormap) IsReversed() bool {
	return c.reversed
}

// Stops returns c's stops in the order c traverses them.
func (c *Colormap) Stops() []string {
	out := append([]string(nil), c.hexes...)
	if c.reversed {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Reversed returns a Colormap named name that is c evaluated at 1-x.
func (c *Colormap) Reversed(name string) *Colormap {
	r := *c
	r.name = name
	r.reversed = !c.reversed
	return &r
}

// Map returns the colour at position x. x is clamped to [0, 1]; NaN
// maps to the first stop.
func (c *Colormap) Map(x float64) color.Color {
	return c.at(x)
}

// Hex returns the colour at position x as an upper-case "#RRGGBB".
func (c *Colormap) Hex(x float64) string {
	rgba := c.at(x)
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}

// Sample returns n colours evenly spaced over [0, 1], including both
// ends.
func (c *Colormap) Sample(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.Color{c.at(0)}
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = c.at(float64(i) / float64(n-1))
	}
	return out
}

// Norm returns a function that maps data values in [lo, hi] onto c.
// Values outside the range clamp to the ends. If lo == hi every value
// maps to the middle of c.
func (c *Colormap) Norm(lo, hi float64) func(v float64) color.Color {
	if lo == hi {
		mid := c.at(0.5)
		return func(float64) color.Color { return mid }
	}
	s := scale.Linear{Min: lo, Max: hi}
	return func(v float64) color.Color {
		return c.at(s.Map(v))
	}
}

func (c *Colormap) String() string {
	return fmt.Sprintf("Colormap(%s, %v, %v)", c.name, c.interp, c.Stops())
}

const posGrid = 1 << 32

func (c *Colormap) at(x float64) color.RGBA {
	if math.IsNaN(x) {
		x = 0
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	// Positions are snapped to a 1/posGrid grid and reversed in
	// grid units, so c at x and its reverse at 1-x evaluate the same
	// point even when 1-x is not exact in floating point.
	k := math.Round(x * posGrid)
	if c.reversed {
		k = posGrid - k
	}
	x = k / posGrid

	n := x * float64(len(c.stops)-1)
	i := int(n)
	if i >= len(c.stops)-1 {
		return toRGBA(c.stops[len(c.stops)-1])
	}
	fr := n - float64(i)
	a, b := c.stops[i], c.stops[i+1]
	switch c.interp {
	case Lab:
		return toRGBA(a.BlendLab(b, fr))
	case LinearLight:
		return toRGBA(a.BlendLinearRgb(b, fr))
	default:
		return toRGBA(a.BlendRgb(b, fr))
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}
