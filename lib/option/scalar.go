// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strconv"
)

// Int is the codec for plain int values. Merge is numeric addition.
type Int struct{}

// Format renders value in base 10.
func (Int) Format(value int) string {
	return strconv.Itoa(value)
}

// Parse decodes a base-10 integer.
func (Int) Parse(text string) (int, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFormat, text)
	}
	return value, nil
}

// Add parses text as an integer delta and adds it to value. Reports
// whether the delta was non-zero.
func (codec Int) Add(value *int, text string) (bool, error) {
	delta, err := codec.Parse(text)
	if err != nil {
		return false, err
	}
	*value += delta
	return delta != 0, nil
}

func (Int) TypeName() string { return "int" }

// Size is the codec for unsigned counters (list lengths, revision
// numbers, timestamps). It has no merge rule.
type Size struct{}

// Format renders value in base 10.
func (Size) Format(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

// Parse decodes a base-10 unsigned integer.
func (Size) Parse(text string) (uint, error) {
	value, err := strconv.ParseUint(text, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidFormat, text)
	}
	return uint(value), nil
}

func (Size) TypeName() string { return "uint" }

// Bool is the codec for booleans. There is no merge rule for booleans.
type Bool struct{}

// Format renders "true" or "false".
func (Bool) Format(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

// Parse accepts "true" and "yes" as true, "false" and "no" as false.
func (Bool) Parse(text string) (bool, error) {
	switch text {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: boolean values are either true, yes, false or no", ErrInvalidFormat)
}

func (Bool) TypeName() string { return "bool" }

// Number is the codec for strongly typed integer newtypes (see
// lib/units). Format and Parse go through the underlying integer and
// reconstruct the wrapped type; merge adds the parsed delta directly.
// Name is the published type descriptor, e.g. "line-count".
type Number[T ~int] struct {
	Name string
}

// Format renders the underlying integer in base 10.
func (Number[T]) Format(value T) string {
	return strconv.Itoa(int(value))
}

// Parse decodes a base-10 integer into the wrapped type.
func (codec Number[T]) Parse(text string) (T, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %s", ErrInvalidFormat, text, codec.TypeName())
	}
	return T(value), nil
}

// Add parses text as an integer delta and adds it to value. Reports
// whether the delta was non-zero.
func (codec Number[T]) Add(value *T, text string) (bool, error) {
	delta, err := strconv.Atoi(text)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a %s", ErrInvalidFormat, text, codec.TypeName())
	}
	*value += T(delta)
	return delta != 0, nil
}

func (codec Number[T]) TypeName() string { return codec.Name }
