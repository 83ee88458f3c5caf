// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	for _, test := range []struct {
		args       []string
		code       int
		stdout     string
		stderr     string
		emptyOut   bool
		emptyError bool
	}{
		{args: nil, code: 0, stdout: "Usage: callosum", emptyError: true},
		{args: []string{"--version"}, code: 0, stdout: "callosum " + version + "\n", emptyError: true},
		{args: []string{"-version"}, code: 0, stdout: "callosum " + version + "\n", emptyError: true},
		{args: []string{"--help"}, code: 0, stderr: "Usage: callosum", emptyOut: true},
		{args: []string{"--bogus"}, code: 2, stderr: "flag provided but not defined", emptyOut: true},
		{args: []string{"plot"}, code: 2, stderr: "callosum: unknown command \"plot\"\n", emptyOut: true},
	} {
		var stdout, stderr bytes.Buffer
		code := run(test.args, &stdout, &stderr)
		if code != test.code {
			t.Errorf("run(%q) = %d, want %d", test.args, code, test.code)
		}
		if !strings.Contains(stdout.String(), test.stdout) {
			t.Errorf("run(%q) stdout = %q, want it to contain %q", test.args, stdout.String(), test.stdout)
		}
		if !strings.Contains(stderr.String(), test.stderr) {
			t.Errorf("run(%q) stderr = %q, want it to contain %q", test.args, stderr.String(), test.stderr)
		}
		if test.emptyOut && stdout.Len() != 0 {
			t.Errorf("run(%q) wrote to stdout: %q", test.args, stdout.String())
		}
		if test.emptyError && stderr.Len() != 0 {
			t.Errorf("run(%q) wrote to stderr: %q", test.args, stderr.String())
		}
	}
}
