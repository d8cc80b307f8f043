// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strings"
)

// Desc pairs one legal enumeration value with its canonical lowercase
// name. A slice of Desc in declaration order is the descriptor table
// that drives the Enum and Flags codecs; only values present in the
// table are legal.
type Desc[T comparable] struct {
	Value T
	Name  string
}

// bits is the constraint for flag enumerations, which opt in to
// bitwise-combination semantics.
type bits interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum is the codec for plain enumerations: exactly one name in,
// exactly one value out. Enums have no merge rule.
type Enum[T comparable] struct {
	Desc []Desc[T]
}

// Format renders the canonical name of value. Values outside the
// descriptor table render as the empty string; the codec never
// produces them, so they cannot appear in a round trip.
func (codec Enum[T]) Format(value T) string {
	for _, desc := range codec.Desc {
		if desc.Value == value {
			return desc.Name
		}
	}
	return ""
}

// Parse decodes exactly one canonical name.
func (codec Enum[T]) Parse(text string) (T, error) {
	for _, desc := range codec.Desc {
		if desc.Name == text {
			return desc.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: invalid enum value %q, expected one of %s", ErrInvalidFormat, text, codec.names())
}

// TypeName lists the legal names: "enum(json|lsp|none)".
func (codec Enum[T]) TypeName() string {
	return "enum(" + codec.names() + ")"
}

func (codec Enum[T]) names() string {
	names := make([]string, len(codec.Desc))
	for i, desc := range codec.Desc {
		names[i] = desc.Name
	}
	return strings.Join(names, "|")
}

// Flags is the codec for bit-flag enumerations: a '|'-joined set of
// active flag names. The empty string is the empty set. Merge unions
// the decoded delta into the target.
type Flags[T bits] struct {
	Desc []Desc[T]
}

// Format renders the names of all flags set in value, in descriptor
// order, '|'-joined. Bits absent from the descriptor table are
// dropped; the codec never produces them.
func (codec Flags[T]) Format(value T) string {
	var names []string
	for _, desc := range codec.Desc {
		if desc.Value != 0 && value&desc.Value == desc.Value {
			names = append(names, desc.Name)
		}
	}
	return strings.Join(names, "|")
}

// Parse decodes a '|'-joined set of flag names into their union.
func (codec Flags[T]) Parse(text string) (T, error) {
	var result T
	if text == "" {
		return result, nil
	}
	for _, name := range strings.Split(text, "|") {
		flag, found := codec.lookup(name)
		if !found {
			return result, fmt.Errorf("%w: invalid flag value %q, expected a combination of %s", ErrInvalidFormat, name, codec.names())
		}
		result |= flag
	}
	return result, nil
}

// Add decodes text as a flag set and unions it into value. Reports
// whether the delta set was non-empty.
func (codec Flags[T]) Add(value *T, text string) (bool, error) {
	delta, err := codec.Parse(text)
	if err != nil {
		return false, err
	}
	*value |= delta
	return delta != 0, nil
}

// TypeName lists the legal names: "flags(hooks|shell)".
func (codec Flags[T]) TypeName() string {
	return "flags(" + codec.names() + ")"
}

func (codec Flags[T]) lookup(name string) (T, bool) {
	for _, desc := range codec.Desc {
		if desc.Name == name {
			return desc.Value, true
		}
	}
	return 0, false
}

func (codec Flags[T]) names() string {
	names := make([]string, len(codec.Desc))
	for i, desc := range codec.Desc {
		names[i] = desc.Name
	}
	return strings.Join(names, "|")
}
