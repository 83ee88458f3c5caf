// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting is the entry point to Callosum brand styling for
// go-gg plots.
//
// Apply the Callosum style globally:
//
//	plotting.Use()
//
// Or scope it to a block:
//
//	err := plotting.Context(func() error {
//		p := gg.NewPlot(tab)
//		p.Add(plotting.Plotter(), plotting.Title("monthly revenue"))
//		...
//	})
//
// Brand colours and colormaps:
//
//	plotting.Palette().MustGet("deep_blue") // "#053362"
//	cm, err := plotting.Colormap("default", false)
package plotting

import (
	"log"
	"os"
	"sync"

	"github.com/aclements/go-gg/gg"
	"github.com/corpus-callosum/callosum/colormap"
	"github.com/corpus-callosum/callosum/fonts"
	"github.com/corpus-callosum/callosum/palette"
	"github.com/corpus-callosum/callosum/style"
)

// Warning is a logger for setup problems that do not stop the rest of
// the package from working, such as a missing font directory.
var Warning = log.New(os.Stderr, "[callosum] ", 0)

// Options configures Init.
type Options struct {
	// FontDir is a directory of additional .otf/.ttf files to
	// register after the bundled fonts. If it is "", only the
	// bundled fonts are registered.
	FontDir string

	// Sheet replaces the bundled style sheet if non-nil.
	Sheet *style.Sheet
}

// An Env holds the registries a caller needs to style plots. Most
// programs use the process-wide Env through the package functions;
// tests and libraries can build their own with NewEnv.
type Env struct {
	Palette   *palette.Palette
	Colormaps *colormap.Registry
	Fonts     *fonts.Manager
	Style     *style.State
	Sheet     *style.Sheet
}

// NewEnv builds an Env with the brand palette, a fresh colormap store,
// an empty font manager and a style state with no parameters set.
// Nothing is registered until Setup is called.
func NewEnv(opts Options) *Env {
	sheet := opts.Sheet
	if sheet == nil {
		sheet = style.Callosum()
	}
	return &Env{
		Palette:   palette.Callosum(),
		Colormaps: colormap.NewRegistry(colormap.Prefix, colormap.NewStore()),
		Fonts:     fonts.NewManager(),
		Style:     style.NewState(nil),
		Sheet:     sheet,
	}
}

// Setup registers the bundled fonts, fonts from fontDir if it is not
// "", and the brand colormaps. It may be called more than once.
// Failures are logged to Warning and otherwise ignored so that palette
// lookups keep working in environments without fonts.
func (e *Env) Setup(fontDir string) {
	if _, err := e.Fonts.AddBundled(); err != nil {
		Warning.Printf("registering bundled fonts: %v", err)
	}
	if fontDir != "" {
		if _, err := e.Fonts.AddDir(fontDir); err != nil {
			Warning.Printf("registering fonts: %v", err)
		}
	}
	defs, err := colormap.Definitions(e.Palette)
	if err != nil {
		Warning.Printf("building colormaps: %v", err)
		return
	}
	if _, err := e.Colormaps.RegisterAll(defs); err != nil {
		Warning.Printf("registering colormaps: %v", err)
	}
}

// Use applies e's style sheet to e.Style.
func (e *Env) Use() {
	e.Style.Use(e.Sheet)
}

// Context runs fn with e's style sheet applied and restores the
// previous style afterwards, even if fn fails or panics.
func (e *Env) Context(fn func() error) error {
	return e.Style.Context(e.Sheet, fn)
}

// Plotter returns a gg.Plotter that applies e's current style.
func (e *Env) Plotter() gg.Plotter {
	return style.Plotter(e.Style.Params(), e.Palette, e.Colormaps)
}

var (
	initOnce sync.Once
	global   *Env
)

// Init sets up the process-wide Env. Only the first call has any
// effect; the package functions call Init with zero Options if it has
// not been called.
func Init(opts Options) {
	initOnce.Do(func() {
		global = NewEnv(opts)
		global.Setup(opts.FontDir)
	})
}

// Default returns the process-wide Env.
func Default() *Env {
	Init(Options{})
	return global
}

// Palette returns the brand palette.
func Palette() *palette.Palette {
	return Default().Palette
}

// Colormap returns a Callosum colormap by short name, e.g. "default",
// or its reversed variant.
func Colormap(name string, reverse bool) (*colormap.Colormap, error) {
	return Default().Colormaps.Get(name, reverse)
}

// Colormaps returns the short names of the registered Callosum
// colormaps.
func Colormaps() []string {
	return Default().Colormaps.List()
}

// Use applies the Callosum style globally for the rest of the process.
func Use() {
	Default().Use()
}

// Context applies the Callosum style while fn runs.
func Context(fn func() error) error {
	return Default().Context(fn)
}

// Style returns a copy of the current style parameters.
func Style() style.Params {
	return Default().Style.Params()
}

// Plotter returns a gg.Plotter applying the current style.
func Plotter() gg.Plotter {
	return Default().Plotter()
}

// Title returns a gg.Plotter that sets an all-caps plot title.
func Title(text string) gg.Plotter {
	return style.Title(text)
}
