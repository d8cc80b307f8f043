// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

// Value is the store-facing surface of one option instance: a mutable
// typed cell bound to its codec, with the type erased so the option
// store can hold heterogeneous options in one collection.
//
// A Value is not safe for concurrent mutation; the store that owns it
// serializes Parse and Add calls on the same instance.
type Value interface {
	// Format renders the current value canonically.
	Format() string

	// Parse replaces the current value with the decoded text. On
	// failure the current value is left unmodified.
	Parse(text string) error

	// Add merges a textual delta into the current value, reporting
	// whether it was a real change. Fails with ErrUnsupported when the
	// underlying shape has no merge rule.
	Add(text string) (bool, error)

	// TypeName returns the codec's type descriptor.
	TypeName() string
}

// NewValue binds codec to a mutable cell holding initial.
func NewValue[T any](codec Codec[T], initial T) Value {
	return &cell[T]{codec: codec, value: initial}
}

// Get returns the current value of a Value created by NewValue with
// value type T. The second result is false when the Value holds a
// different type.
func Get[T any](value Value) (T, bool) {
	if c, ok := value.(*cell[T]); ok {
		return c.value, true
	}
	var zero T
	return zero, false
}

type cell[T any] struct {
	codec Codec[T]
	value T
}

func (c *cell[T]) Format() string {
	return c.codec.Format(c.value)
}

func (c *cell[T]) Parse(text string) error {
	value, err := c.codec.Parse(text)
	if err != nil {
		return err
	}
	c.value = value
	return nil
}

func (c *cell[T]) Add(text string) (bool, error) {
	return Add(c.codec, &c.value, text)
}

func (c *cell[T]) TypeName() string {
	return c.codec.TypeName()
}
