// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/gg"
)

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// Ranger returns a gg.ContinuousRanger that maps scaled values through
// c, for use as the range of a gg colour scale:
//
//	s := gg.NewLinearScaler()
//	s.Ranger(cm.Ranger())
//	plot.SetScale("fill", s)
func (c *Colormap) Ranger() gg.ContinuousRanger {
	return ranger{c}
}

type ranger struct {
	c *Colormap
}

func (r ranger) RangeType() reflect.Type {
	return colorType
}

func (r ranger) Map(x float64) interface{} {
	return r.c.at(x)
}

// Unmap is not supported; colormaps are not invertible in general.
func (r ranger) Unmap(y interface{}) (float64, bool) {
	return 0, false
}
