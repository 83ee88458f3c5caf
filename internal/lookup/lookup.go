// Copyright 2026 The Callosum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lookup defines the error returned by every name-keyed
// registry in this module.
package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by errors.Is for any *NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup of a name that is not in a registry.
// Available lists the names that would have succeeded.
type NotFoundError struct {
	Kind      string // e.g. "brand colour", "colormap"
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q is not a Callosum %s. Available: [%s]", e.Name, e.Kind, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
