// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command callosum is the access point for Callosum developer tooling.
//
// It currently has no commands. With no arguments it prints help; with
// -version it prints the version.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("callosum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flagVersion := fs.Bool("version", false, "print the version and exit")
	usage := func(w io.Writer) {
		fmt.Fprintf(w, "Usage: callosum [flags] <command>\n\n")
		fmt.Fprintf(w, "Convenient access point for internal Callosum developer tooling.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}
	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *flagVersion {
		fmt.Fprintf(stdout, "callosum %s\n", version)
		return 0
	}

	if fs.NArg() == 0 {
		usage(stdout)
		return 0
	}

	logger := log.New(stderr, "callosum: ", 0)
	logger.Printf("unknown command %q", fs.Arg(0))
	fs.Usage()
	return 2
}
