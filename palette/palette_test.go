// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"image/color"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/corpus-callosum/callosum/internal/lookup"
)

var hexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestGet(t *testing.T) {
	p := Callosum()
	for _, name := range p.Names() {
		got, err := p.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if !hexRe.MatchString(got) {
			t.Errorf("Get(%q) = %q, want #RRGGBB", name, got)
		}
		if again, _ := p.Get(name); again != got {
			t.Errorf("Get(%q) not deterministic: %q then %q", name, got, again)
		}
	}

	for _, test := range []struct {
		name, want string
	}{
		{"deep_blue", DeepBlue},
		{"deep_blue", "#053362"},
		{"pale_blue", "#9AE1D4"},
		{"purple_brown", "#4B261E"},
	} {
		if got := p.MustGet(test.name); got != test.want {
			t.Errorf("Get(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	p := Callosum()
	for _, name := range []string{"nonexistent_name", "Deep_Blue", "deep", ""} {
		_, err := p.Get(name)
		if !errors.Is(err, lookup.ErrNotFound) {
			t.Errorf("Get(%q) error = %v, want not found", name, err)
			continue
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Get(%q) error %T is not *NotFoundError", name, err)
		}
		if !reflect.DeepEqual(nf.Available, p.Names()) {
			t.Errorf("Available = %v, want %v", nf.Available, p.Names())
		}
		if !strings.Contains(err.Error(), "deep_blue") {
			t.Errorf("error %q does not list valid names", err)
		}
	}
}

func TestOrder(t *testing.T) {
	p := Callosum()
	if p.Len() != 15 {
		t.Fatalf("Len() = %d, want 15", p.Len())
	}
	names, vals := p.Names(), p.Values()
	if names[0] != "off_white" || vals[0] != OffWhite {
		t.Errorf("first entry = %s %s, want off_white %s", names[0], vals[0], OffWhite)
	}
	if names[14] != "purple_brown" || vals[14] != PurpleBrown {
		t.Errorf("last entry = %s %s, want purple_brown %s", names[14], vals[14], PurpleBrown)
	}
	for i, e := range p.Entries() {
		if e.Name != names[i] || e.Hex != vals[i] {
			t.Errorf("Entries()[%d] = %v, want {%s %s}", i, e, names[i], vals[i])
		}
	}
}

func TestAsMapIsCopy(t *testing.T) {
	p := Callosum()
	m := p.AsMap()
	if len(m) != p.Len() {
		t.Fatalf("len(AsMap()) = %d, want %d", len(m), p.Len())
	}
	m["deep_blue"] = "#000000"
	delete(m, "royal_blue")
	m["extra"] = "#FFFFFF"
	if got := p.MustGet("deep_blue"); got != DeepBlue {
		t.Errorf("Get(deep_blue) after mutating copy = %q, want %q", got, DeepBlue)
	}
	if _, err := p.Get("royal_blue"); err != nil {
		t.Errorf("Get(royal_blue) after deleting from copy: %v", err)
	}
	if _, err := p.Get("extra"); err == nil {
		t.Errorf("Get(extra) succeeded after adding to copy")
	}
}

func TestValuesIsCopy(t *testing.T) {
	p := Callosum()
	vals := p.Values()
	vals[0] = "#000000"
	if p.Values()[0] != OffWhite {
		t.Errorf("Values()[0] changed after mutating a copy")
	}
}

func TestCycleAll(t *testing.T) {
	p := Callosum()
	c, err := p.Cycle()
	if err != nil {
		t.Fatal(err)
	}
	vals := p.Values()
	n := len(vals)
	got := c.Take(2*n + 1)
	for i, hex := range got {
		if want := vals[i%n]; hex != want {
			t.Errorf("step %d = %s, want %s", i, hex, want)
		}
	}
	if got[n] != got[0] {
		t.Errorf("step %d = %s, want step 0 %s", n, got[n], got[0])
	}

	c.Reset()
	if hex := c.Next(); hex != vals[0] {
		t.Errorf("after Reset, Next() = %s, want %s", hex, vals[0])
	}
}

func TestCycleNamed(t *testing.T) {
	p := Callosum()
	c, err := p.Cycle("royal_blue", "deep_blue")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{RoyalBlue, DeepBlue, RoyalBlue, DeepBlue, RoyalBlue}
	if got := c.Take(5); !reflect.DeepEqual(got, want) {
		t.Errorf("Take(5) = %v, want %v", got, want)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	// Non-positive counts take nothing and leave the position alone.
	for _, n := range []int{0, -1} {
		if got := c.Take(n); got != nil {
			t.Errorf("Take(%d) = %v, want nil", n, got)
		}
	}
	if got := c.Next(); got != DeepBlue {
		t.Errorf("Next() after Take(-1) = %s, want %s", got, DeepBlue)
	}
}

func TestCycleInvalid(t *testing.T) {
	p := Callosum()
	_, err := p.Cycle("royal_blue", "bogus", "also_bogus")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Cycle with bad name: error = %v, want *NotFoundError", err)
	}
	if nf.Name != "bogus" {
		t.Errorf("NotFoundError.Name = %q, want first invalid name %q", nf.Name, "bogus")
	}
}

func TestCycleEmpty(t *testing.T) {
	c := NewCycle()
	if got := c.Next(); got != "" {
		t.Errorf("empty cycle Next() = %q, want \"\"", got)
	}
}

func TestCycleRanger(t *testing.T) {
	c, err := Callosum().Cycle("deep_blue", "royal_green")
	if err != nil {
		t.Fatal(err)
	}
	r := c.Ranger()
	if min, max := r.Levels(); min != 2 || max != 2 {
		t.Errorf("Levels() = %d, %d, want 2, 2", min, max)
	}
	want := color.RGBA{0x05, 0x33, 0x62, 0xff}
	if got := r.MapLevel(0, 2); got != want {
		t.Errorf("MapLevel(0) = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	for _, test := range []struct {
		entries []Entry
		ok      bool
	}{
		{[]Entry{{"a", "#000000"}, {"b", "#FFFFFF"}}, true},
		{[]Entry{{"a", "#abcdef"}}, true},
		{[]Entry{}, true},
		{[]Entry{{"a", "#000"}}, false},
		{[]Entry{{"a", "000000"}}, false},
		{[]Entry{{"a", "#GGGGGG"}}, false},
		{[]Entry{{"a", "#000000"}, {"a", "#111111"}}, false},
		{[]Entry{{"", "#000000"}}, false},
	} {
		_, err := New(test.entries...)
		if (err == nil) != test.ok {
			t.Errorf("New(%v) error = %v, want ok=%v", test.entries, err, test.ok)
		}
	}
}

func TestColor(t *testing.T) {
	got, err := Callosum().Color("royal_blue")
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{0x00, 0x62, 0xe5, 0xff}); got != want {
		t.Errorf("Color(royal_blue) = %v, want %v", got, want)
	}
	if _, err := Callosum().Color("nope"); err == nil {
		t.Errorf("Color(nope) succeeded")
	}
}

func TestString(t *testing.T) {
	s := Callosum().String()
	if !strings.HasPrefix(s, "Palette(\n") || !strings.Contains(s, "  deep_blue: #053362\n") {
		t.Errorf("String() = %q", s)
	}
}
