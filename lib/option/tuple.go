// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"

	"github.com/anddam/kakoune/lib/escape"
)

// Pair is a fixed two-slot heterogeneous tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a fixed three-slot heterogeneous tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairCodec is the codec for two-slot tuples. Slots are rendered in
// ascending order, '|'-joined, each escaped against '|'. Decoding
// enforces the exact slot count. Tuples have no merge rule.
type PairCodec[A, B any] struct {
	First  Codec[A]
	Second Codec[B]
}

// Format renders the slots low to high, '|'-joined.
func (codec PairCodec[A, B]) Format(value Pair[A, B]) string {
	return escape.Escape(codec.First.Format(value.First), tupleSeparator, escapeChar) +
		"|" +
		escape.Escape(codec.Second.Format(value.Second), tupleSeparator, escapeChar)
}

// Parse splits text on unescaped '|' and decodes each slot in order.
// It fails unless exactly two segments are present.
func (codec PairCodec[A, B]) Parse(text string) (Pair[A, B], error) {
	var result Pair[A, B]
	segments, err := splitTuple(text, 2)
	if err != nil {
		return result, err
	}
	if result.First, err = codec.First.Parse(segments[0]); err != nil {
		return Pair[A, B]{}, err
	}
	if result.Second, err = codec.Second.Parse(segments[1]); err != nil {
		return Pair[A, B]{}, err
	}
	return result, nil
}

// TypeName joins the slot type names with '-' and appends "-tuple":
// "int-bool-tuple".
func (codec PairCodec[A, B]) TypeName() string {
	return codec.First.TypeName() + "-" + codec.Second.TypeName() + "-tuple"
}

// TripleCodec is the codec for three-slot tuples; it behaves exactly
// like PairCodec with one more slot.
type TripleCodec[A, B, C any] struct {
	First  Codec[A]
	Second Codec[B]
	Third  Codec[C]
}

// Format renders the slots low to high, '|'-joined.
func (codec TripleCodec[A, B, C]) Format(value Triple[A, B, C]) string {
	return escape.Escape(codec.First.Format(value.First), tupleSeparator, escapeChar) +
		"|" +
		escape.Escape(codec.Second.Format(value.Second), tupleSeparator, escapeChar) +
		"|" +
		escape.Escape(codec.Third.Format(value.Third), tupleSeparator, escapeChar)
}

// Parse splits text on unescaped '|' and decodes each slot in order.
// It fails unless exactly three segments are present.
func (codec TripleCodec[A, B, C]) Parse(text string) (Triple[A, B, C], error) {
	var result Triple[A, B, C]
	segments, err := splitTuple(text, 3)
	if err != nil {
		return result, err
	}
	if result.First, err = codec.First.Parse(segments[0]); err != nil {
		return Triple[A, B, C]{}, err
	}
	if result.Second, err = codec.Second.Parse(segments[1]); err != nil {
		return Triple[A, B, C]{}, err
	}
	if result.Third, err = codec.Third.Parse(segments[2]); err != nil {
		return Triple[A, B, C]{}, err
	}
	return result, nil
}

// TypeName joins the slot type names with '-' and appends "-tuple".
func (codec TripleCodec[A, B, C]) TypeName() string {
	return codec.First.TypeName() + "-" + codec.Second.TypeName() + "-" + codec.Third.TypeName() + "-tuple"
}

// splitTuple splits text on unescaped '|' and enforces the arity.
func splitTuple(text string, arity int) ([]string, error) {
	segments := escape.Split(text, tupleSeparator, escapeChar)
	if len(segments) < arity {
		return nil, fmt.Errorf("%w: not enough elements in tuple", ErrInvalidFormat)
	}
	if len(segments) > arity {
		return nil, fmt.Errorf("%w: too many elements in tuple", ErrInvalidFormat)
	}
	return segments, nil
}
