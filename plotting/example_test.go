// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting_test

import (
	"fmt"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/corpus-callosum/callosum/plotting"
)

func ExampleContext() {
	tab := new(table.Builder).
		Add("month", []float64{1, 2, 3, 1, 2, 3}).
		Add("revenue", []float64{10, 12, 15, 4, 6, 5}).
		Add("tier", []string{"pro", "pro", "pro", "free", "free", "free"}).
		Done()

	err := plotting.Context(func() error {
		p := gg.NewPlot(tab)
		p.Add(plotting.Plotter(), plotting.Title("monthly revenue by tier"))
		p.Add(gg.LayerLines{X: "month", Y: "revenue", Color: "tier"})
		return p.WriteSVG(os.Stdout, 500, 350)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func ExampleColormap() {
	cm, err := plotting.Colormap("blues", false)
	if err != nil {
		panic(err)
	}
	fmt.Println(cm.Hex(0), cm.Hex(0.5), cm.Hex(1))

	rev, _ := plotting.Colormap("blues", true)
	fmt.Println(rev.Hex(0))
	// Output:
	// #053362 #0062E5 #9AE1D4
	// #9AE1D4
}

func ExamplePalette() {
	pal := plotting.Palette()
	fmt.Println(pal.MustGet("deep_blue"))

	cycle, _ := pal.Cycle("royal_blue", "deep_blue")
	fmt.Println(cycle.Take(3))
	// Output:
	// #053362
	// [#0062E5 #053362 #0062E5]
}
