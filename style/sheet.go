// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style reads style sheets and applies them to a process-wide
// style state and to gg plots.
//
// A style sheet has one "key: value" property per line. A "#" at the
// start of a line, or a "#" preceded by white space and followed by
// white space, starts a comment. Blank lines are ignored.
package style

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/corpus-callosum/callosum/internal/lookup"
	"github.com/corpus-callosum/callosum/palette"
)

//go:embed callosum.style
var callosumSheet string

// A Sheet is a named set of style parameters.
type Sheet struct {
	Name   string
	Params Params
}

// Callosum returns the bundled brand style sheet.
func Callosum() *Sheet {
	s, err := Parse("callosum", strings.NewReader(callosumSheet))
	if err != nil {
		panic("bundled style sheet: " + err.Error())
	}
	return s
}

var (
	paramRe   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.\-]*)[ \t]*:[ \t]*(.*)$`)
	commentRe = regexp.MustCompile(`(^|[ \t])#([ \t].*)?$`)
)

// Parse reads a style sheet from r. Later definitions of a key replace
// earlier ones.
func Parse(name string, r io.Reader) (*Sheet, error) {
	s := &Sheet{Name: name, Params: make(Params)}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if loc := commentRe.FindStringIndex(line); loc != nil {
			line = strings.TrimSpace(line[:loc[0]])
		}
		if line == "" {
			continue
		}

		m := paramRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%s:%d: expected \"key: value\", got %q", name, lineno, line)
		}
		s.Params[m[1]] = strings.TrimSpace(m[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Params maps style keys to raw values.
type Params map[string]string

// Copy returns a copy of p.
func (p Params) Copy() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Keys returns p's keys in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p Params) raw(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", &lookup.NotFoundError{Kind: "style parameter", Name: key, Available: p.Keys()}
	}
	return v, nil
}

// Get returns the raw value of key.
func (p Params) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Float returns the value of key as a float64.
func (p Params) Float(key string) (float64, error) {
	v, err := p.raw(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("style parameter %s: %w", key, err)
	}
	return f, nil
}

// Bool returns the value of key as a bool. It accepts the forms
// understood by strconv.ParseBool as well as "yes", "no", "on" and
// "off".
func (p Params) Bool(key string) (bool, error) {
	v, err := p.raw(key)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "yes", "on":
		return true, nil
	case "no", "off", "none":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("style parameter %s: %w", key, err)
	}
	return b, nil
}

// List returns the value of key split on commas.
func (p Params) List(key string) ([]string, error) {
	v, err := p.raw(key)
	if err != nil {
		return nil, err
	}
	return splitList(v), nil
}

// Color returns the value of key as a "#RRGGBB" string. Palette colour
// names are resolved with pal, which may be nil.
func (p Params) Color(key string, pal *palette.Palette) (string, error) {
	v, err := p.raw(key)
	if err != nil {
		return "", err
	}
	hex, err := resolveColor(v, pal)
	if err != nil {
		return "", fmt.Errorf("style parameter %s: %w", key, err)
	}
	return hex, nil
}

var cyclerRe = regexp.MustCompile(`^cycler\(\s*['"]color['"]\s*,\s*\[(.*)\]\s*\)$`)

// Colors returns the value of key as a list of "#RRGGBB" strings. The
// value may be a comma separated list or a cycler('color', [...])
// expression. Palette colour names are resolved with pal, which may be
// nil.
func (p Params) Colors(key string, pal *palette.Palette) ([]string, error) {
	v, err := p.raw(key)
	if err != nil {
		return nil, err
	}
	if m := cyclerRe.FindStringSubmatch(v); m != nil {
		v = m[1]
	}
	var out []string
	for _, item := range splitList(v) {
		hex, err := resolveColor(item, pal)
		if err != nil {
			return nil, fmt.Errorf("style parameter %s: %w", key, err)
		}
		out = append(out, hex)
	}
	return out, nil
}

func splitList(v string) []string {
	var out []string
	for _, f := range strings.Split(v, ",") {
		f = strings.Trim(strings.TrimSpace(f), `'"`)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// resolveColor accepts "#RRGGBB", "RRGGBB" or a palette name.
func resolveColor(v string, pal *palette.Palette) (string, error) {
	v = strings.Trim(strings.TrimSpace(v), `'"`)
	if pal != nil {
		if hex, err := pal.Get(v); err == nil {
			return hex, nil
		}
	}
	hex := strings.ToUpper(v)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if _, err := palette.ParseHex(hex); err != nil {
		return "", err
	}
	return hex, nil
}
