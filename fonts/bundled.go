// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"errors"
	"path"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// BundledDir is the path prefix under which bundled fonts are
// registered.
const BundledDir = "bundled"

// bundled is the font set shipped with the module, in registration
// order.
var bundled = []struct {
	name string
	data []byte
}{
	{"Go-Regular.ttf", goregular.TTF},
	{"Go-Medium.ttf", gomedium.TTF},
	{"Go-Bold.ttf", gobold.TTF},
	{"Go-Italic.ttf", goitalic.TTF},
	{"Go-BoldItalic.ttf", gobolditalic.TTF},
	{"Go-Mono.ttf", gomono.TTF},
	{"Go-Mono-Bold.ttf", gomonobold.TTF},
}

// BundledPaths returns the paths AddBundled registers fonts under.
func BundledPaths() []string {
	out := make([]string, len(bundled))
	for i, b := range bundled {
		out[i] = path.Join(BundledDir, b.name)
	}
	return out
}

// AddBundled registers the bundled font set. Like AddDir it keeps going
// after a bad font and returns the number of fonts it added.
func (m *Manager) AddBundled() (int, error) {
	n := 0
	var errs []error
	for _, b := range bundled {
		before := m.Len()
		if err := m.AddFontData(path.Join(BundledDir, b.name), b.data); err != nil {
			errs = append(errs, err)
			continue
		}
		if m.Len() > before {
			n++
		}
	}
	return n, errors.Join(errs...)
}
