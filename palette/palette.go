// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named access to the Callosum brand colours.
//
// Colours are available as constants (DeepBlue), by name through a
// *Palette (Callosum().Get("deep_blue")), and as an ordered sequence of
// hex strings. A Palette is immutable once constructed.
package palette

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/corpus-callosum/callosum/internal/lookup"
	"github.com/lucasb-eyer/go-colorful"
)

// NotFoundError is returned by Get and Cycle for unknown names.
type NotFoundError = lookup.NotFoundError

// The Callosum brand colours.
const (
	OffWhite       = "#F4EEE8"
	DarkOffWhite   = "#EADFCF"
	PaleBlue       = "#9AE1D4"
	RoyalBlue      = "#0062E5"
	DeepBlue       = "#053362"
	RoyalGreen     = "#1EAD52"
	PaleGreen      = "#9CEDAE"
	PaleMint       = "#97E2A4"
	DeepGreen      = "#3D4733"
	ColdGrey       = "#9E9E9E"
	PalePurple     = "#D69ECF"
	RoyalPurple    = "#8B35AD"
	PaleKhakiGreen = "#C8CDAC"
	DeepKhakiGreen = "#392F25"
	PurpleBrown    = "#4B261E"
)

// brand is the brand palette in definition order.
var brand = []Entry{
	{"off_white", OffWhite},
	{"dark_off_white", DarkOffWhite},
	{"pale_blue", PaleBlue},
	{"royal_blue", RoyalBlue},
	{"deep_blue", DeepBlue},
	{"royal_green", RoyalGreen},
	{"pale_green", PaleGreen},
	{"pale_mint", PaleMint},
	{"deep_green", DeepGreen},
	{"cold_grey", ColdGrey},
	{"pale_purple", PalePurple},
	{"royal_purple", RoyalPurple},
	{"pale_khaki_green", PaleKhakiGreen},
	{"deep_khaki_green", DeepKhakiGreen},
	{"purple_brown", PurpleBrown},
}

// Entry is a single named colour.
type Entry struct {
	Name string
	Hex  string // "#RRGGBB"
}

// A Palette is a fixed, ordered mapping from colour names to hex
// strings.
type Palette struct {
	entries []Entry
	index   map[string]int
}

// New returns a Palette of entries, in the order given. Every Hex must
// be a 7 character "#RRGGBB" string and names must be unique.
func New(entries ...Entry) (*Palette, error) {
	p := &Palette{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("palette entry %d has no name", i)
		}
		if _, ok := p.index[e.Name]; ok {
			return nil, fmt.Errorf("duplicate palette entry %q", e.Name)
		}
		if _, err := ParseHex(e.Hex); err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", e.Name, err)
		}
		p.entries[i] = e
		p.index[e.Name] = i
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(entries ...Entry) *Palette {
	p, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	callosumOnce sync.Once
	callosum     *Palette
)

// Callosum returns the brand palette. It is constructed on first use
// and shared by all callers.
func Callosum() *Palette {
	callosumOnce.Do(func() {
		callosum = MustNew(brand...)
	})
	return callosum
}

// ParseHex parses a "#RRGGBB" string into an opaque color.RGBA.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q: want #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// Get returns the hex string for name. Names match exactly.
func (p *Palette) Get(name string) (string, error) {
	i, ok := p.index[name]
	if !ok {
		return "", &NotFoundError{Kind: "brand colour", Name: name, Available: p.Names()}
	}
	return p.entries[i].Hex, nil
}

// MustGet is like Get but panics if name is unknown.
func (p *Palette) MustGet(name string) string {
	hex, err := p.Get(name)
	if err != nil {
		panic(err)
	}
	return hex
}

// Color returns the named colour as a color.RGBA.
func (p *Palette) Color(name string) (color.RGBA, error) {
	hex, err := p.Get(name)
	if err != nil {
		return color.RGBA{}, err
	}
	return ParseHex(hex)
}

// Len returns the number of colours in p.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Names returns the colour names in definition order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Values returns the hex strings in definition order.
func (p *Palette) Values() []string {
	vals := make([]string, len(p.entries))
	for i, e := range p.entries {
		vals[i] = e.Hex
	}
	return vals
}

// Entries returns a copy of the (name, hex) pairs in definition order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// AsMap returns a new name to hex map. Changes to the map do not
// affect p.
func (p *Palette) AsMap() map[string]string {
	m := make(map[string]string, len(p.entries))
	for _, e := range p.entries {
		m[e.Name] = e.Hex
	}
	return m
}

// Cycle returns a Cycle over the named colours, in the order given. If
// no names are given, it cycles over every colour in p in definition
// order. It fails on the first unknown name.
func (p *Palette) Cycle(names ...string) (*Cycle, error) {
	if len(names) == 0 {
		return NewCycle(p.Values()...), nil
	}
	hexes := make([]string, len(names))
	for i, name := range names {
		hex, err := p.Get(name)
		if err != nil {
			return nil, err
		}
		hexes[i] = hex
	}
	return NewCycle(hexes...), nil
}

func (p *Palette) String() string {
	var b strings.Builder
	b.WriteString("Palette(\n")
	for _, e := range p.entries {
		fmt.Fprintf(&b, "  %s: %s\n", e.Name, e.Hex)
	}
	b.WriteString(")")
	return b.String()
}
