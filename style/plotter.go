// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/corpus-callosum/callosum/colormap"
	"github.com/corpus-callosum/callosum/palette"
)

// PlotterKeys lists the parameters Plotter applies to a plot.
var PlotterKeys = []string{"axes.prop_cycle", "image.cmap"}

// Plotter returns a gg.Plotter that applies params to a plot:
//
//   - axes.prop_cycle becomes the range of the "stroke" scale, so
//     series are coloured round-robin from the cycle.
//   - image.cmap, looked up in cmaps, becomes the range of the "fill"
//     scale.
//
// Colour names in params are resolved against pal. Either pal or cmaps
// may be nil. A value for one of these keys that cannot be applied is
// reported to gg.Warning and otherwise ignored.
//
// gg draws frames, grids, ticks and text with fixed colours and widths
// and has no figure background, so every other key (figure.*,
// axes.edgecolor, grid.*, lines.linewidth, font.*, text.color and so
// on) is ignored silently. Those keys stay readable from State for
// renderers that can use them; Params.Unapplied lists them.
func Plotter(params Params, pal *palette.Palette, cmaps *colormap.Registry) gg.Plotter {
	return plotter{params.Copy(), pal, cmaps}
}

type plotter struct {
	params Params
	pal    *palette.Palette
	cmaps  *colormap.Registry
}

func (s plotter) Apply(p *gg.Plot) {
	if _, ok := s.params["axes.prop_cycle"]; ok {
		colors, err := s.params.Colors("axes.prop_cycle", s.pal)
		if err != nil {
			gg.Warning.Print(err)
		} else if len(colors) > 0 {
			sc := gg.NewOrdinalScale()
			sc.Ranger(palette.NewCycle(colors...).Ranger())
			p.SetScale("stroke", sc)
		}
	}

	if name, ok := s.params["image.cmap"]; ok && s.cmaps != nil {
		cm, err := s.cmaps.Lookup(name)
		if err != nil {
			gg.Warning.Print(err)
		} else {
			sc := gg.NewLinearScaler()
			sc.Ranger(cm.Ranger())
			p.SetScale("fill", sc)
		}
	}
}

// Unapplied returns the keys of p that Plotter ignores, sorted.
func (p Params) Unapplied() []string {
	var out []string
keys:
	for _, k := range p.Keys() {
		for _, applied := range PlotterKeys {
			if k == applied {
				continue keys
			}
		}
		out = append(out, k)
	}
	return out
}

// Title returns a gg.Plotter that sets an all-caps plot title. Use it
// instead of gg.Title so capitalisation is consistent across charts.
func Title(text string) gg.Plotter {
	return gg.Title(strings.ToUpper(text))
}
