// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anddam/kakoune/lib/coord"
	"github.com/anddam/kakoune/lib/units"
)

// Coord is the codec for (line, column) positions, rendered as
// "<line>,<column>". The comma is not part of the escaping discipline:
// both halves are bare integers, so no escaping is needed or applied.
// Coordinates have no merge rule.
type Coord struct{}

// Format renders "<line>,<column>".
func (Coord) Format(value coord.LineColumn) string {
	return fmt.Sprintf("%d,%d", value.Line, value.Column)
}

// Parse decodes "<line>,<column>"; it fails unless exactly two
// comma-separated integer segments are present.
func (Coord) Parse(text string) (coord.LineColumn, error) {
	segments := strings.Split(text, ",")
	if len(segments) != 2 {
		return coord.LineColumn{}, fmt.Errorf("%w: expected <line>,<column>", ErrInvalidFormat)
	}
	line, err := strconv.Atoi(segments[0])
	if err != nil {
		return coord.LineColumn{}, fmt.Errorf("%w: expected <line>,<column>", ErrInvalidFormat)
	}
	column, err := strconv.Atoi(segments[1])
	if err != nil {
		return coord.LineColumn{}, fmt.Errorf("%w: expected <line>,<column>", ErrInvalidFormat)
	}
	return coord.LineColumn{
		Line:   units.LineCount(line),
		Column: units.ColumnCount(column),
	}, nil
}

func (Coord) TypeName() string { return "coord" }
