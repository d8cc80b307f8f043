// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"slices"

	"github.com/anddam/kakoune/lib/escape"
)

// PrefixedList pairs one scalar prefix with an ordered list. The
// canonical form is "<prefix>:<list>"; merge only ever touches the
// list part.
type PrefixedList[P comparable, T comparable] struct {
	Prefix P
	List   []T
}

// Equal reports whether both the prefix and the list compare equal.
func (value PrefixedList[P, T]) Equal(other PrefixedList[P, T]) bool {
	return value.Prefix == other.Prefix && slices.Equal(value.List, other.List)
}

// TimestampedList is a list stamped with the logical revision at which
// it was last touched. The timestamp lets consumers detect stale list
// values without comparing elements.
type TimestampedList[T comparable] = PrefixedList[uint, T]

// PrefixedListCodec is the codec for PrefixedList values, generic over
// the prefix and element codecs. The prefix's textual form must not
// contain an unescaped ':'; the numeric prefixes used in practice
// never do.
type PrefixedListCodec[P comparable, T comparable] struct {
	// Name, when non-empty, overrides the derived type name. Concrete
	// option types with a published descriptor (e.g. "line-specs") set
	// it; generic uses leave it empty.
	Name   string
	Prefix Codec[P]
	Elem   Codec[T]
}

// TimestampedListCodec returns the codec for a TimestampedList with
// the given published type name.
func TimestampedListCodec[T comparable](name string, elem Codec[T]) PrefixedListCodec[uint, T] {
	return PrefixedListCodec[uint, T]{Name: name, Prefix: Size{}, Elem: elem}
}

// Format renders "<prefix>:<list>". A value with an empty list renders
// as the bare prefix followed by ':' and the empty list encoding, i.e.
// "<prefix>:".
func (codec PrefixedListCodec[P, T]) Format(value PrefixedList[P, T]) string {
	return codec.Prefix.Format(value.Prefix) + ":" + codec.list().Format(value.List)
}

// Parse locates the first unescaped ':', decodes everything before it
// as the prefix, and everything after it as the list. Without any ':'
// the whole text is the prefix and the list is left empty.
func (codec PrefixedListCodec[P, T]) Parse(text string) (PrefixedList[P, T], error) {
	var result PrefixedList[P, T]
	head, tail, found := escape.Cut(text, listSeparator, escapeChar)
	prefix, err := codec.Prefix.Parse(head)
	if err != nil {
		return result, err
	}
	result.Prefix = prefix
	if found {
		list, err := codec.list().Parse(tail)
		if err != nil {
			return PrefixedList[P, T]{}, err
		}
		result.List = list
	}
	return result, nil
}

// Add delegates to the list codec's append merge; the prefix is never
// touched by a merge.
func (codec PrefixedListCodec[P, T]) Add(value *PrefixedList[P, T], text string) (bool, error) {
	return codec.list().Add(&value.List, text)
}

// TypeName returns the published Name when set, and otherwise derives
// "<prefix>-prefixed-<elem>-list".
func (codec PrefixedListCodec[P, T]) TypeName() string {
	if codec.Name != "" {
		return codec.Name
	}
	return codec.Prefix.TypeName() + "-prefixed-" + codec.Elem.TypeName() + "-list"
}

func (codec PrefixedListCodec[P, T]) list() List[T] {
	return List[T]{Elem: codec.Elem}
}
