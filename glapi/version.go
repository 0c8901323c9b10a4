// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapi

import (
	"fmt"
	"slices"
	"strings"
)

// Version is a driver API version as (major, minor).
type Version [2]int

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v[0] > major || (v[0] == major && v[1] >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v[0], v[1])
}

// ParseVersion parses a VERSION string such as "4.6.0 NVIDIA 535.54"
// or "OpenGL ES 3.2 Mesa 23.0". It reports whether the version is an
// OpenGL ES one.
func ParseVersion(s string) (Version, bool, error) {
	var ver Version
	es := false
	if rest, ok := strings.CutPrefix(s, "OpenGL ES "); ok {
		es = true
		s = rest
	}
	if _, err := fmt.Sscanf(s, "%d.%d", &ver[0], &ver[1]); err != nil {
		return Version{}, false, fmt.Errorf("glapi: failed to parse OpenGL version %q: %w", s, err)
	}
	return ver, es, nil
}

// Extensions is the set of extension names reported by a driver.
type Extensions []string

// QueryExtensions returns the extensions reported by f using
// NUM_EXTENSIONS and indexed GetStringi.
func QueryExtensions(f Functions) Extensions {
	n := f.GetInteger(NUM_EXTENSIONS)
	exts := make(Extensions, 0, n)
	for i := range n {
		exts = append(exts, f.GetStringi(EXTENSIONS, i))
	}
	return exts
}

// Has reports whether any of the given extensions is present.
func (ex Extensions) Has(names ...string) bool {
	for _, n := range names {
		if slices.Contains(ex, n) {
			return true
		}
	}
	return false
}
