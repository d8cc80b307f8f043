// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package coord defines the (line, column) position composite used by
// cursor and scroll options.
package coord

import "github.com/anddam/kakoune/lib/units"

// LineColumn is a position expressed as a line and a display column.
// Both components are zero-based; the textual option form is
// "<line>,<column>". LineColumn values are comparable with ==.
type LineColumn struct {
	Line   units.LineCount
	Column units.ColumnCount
}
