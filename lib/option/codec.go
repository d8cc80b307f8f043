// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import "errors"

// Separator precedence for nested encodings. Each container escapes
// inner content against exactly one of these; reusing a separator at
// two nesting levels without escaping would corrupt round-trips.
const (
	listSeparator  = ':'
	pairSeparator  = '='
	tupleSeparator = '|'
	escapeChar     = '\\'
)

// ErrInvalidFormat is wrapped by every parse failure: text that does
// not decode into the target shape, whether a malformed scalar, a
// wrong delimiter count, or an unrecognized enum word.
var ErrInvalidFormat = errors.New("invalid option value")

// ErrUnsupported is returned by Add for codecs that define no merge
// semantics.
var ErrUnsupported = errors.New("no add operation supported for this option type")

// Codec converts values of one shape to and from their canonical
// textual form. Codecs are stateless and safe for concurrent use.
type Codec[T any] interface {
	// Format renders value canonically. It never fails for values the
	// codec itself can produce.
	Format(value T) string

	// Parse decodes text into a fresh value, consuming all of it. On
	// failure the returned error wraps ErrInvalidFormat.
	Parse(text string) (T, error)

	// TypeName returns the human-readable type descriptor used for
	// introspection and error messages, e.g. "int-list".
	TypeName() string
}

// Adder is implemented by codecs whose shape has merge semantics:
// numeric addition, list append, flag union. Add decodes the textual
// delta in full before mutating value, merges it in place, and reports
// whether the delta was a real change (a zero delta or empty list
// returns false). Codecs without an Adder implementation fall to the
// universal rejection in [Add].
type Adder[T any] interface {
	Add(value *T, text string) (bool, error)
}

// Add merges the textual delta into value using the codec's merge
// rule. For codecs that do not implement [Adder] it fails with
// [ErrUnsupported]; this is the default for every shape unless a merge
// rule is defined explicitly.
func Add[T any](codec Codec[T], value *T, text string) (bool, error) {
	if adder, ok := codec.(Adder[T]); ok {
		return adder.Add(value, text)
	}
	return false, ErrUnsupported
}
