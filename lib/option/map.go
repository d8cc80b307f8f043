// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"
	"strings"

	"github.com/anddam/kakoune/lib/escape"
	"github.com/anddam/kakoune/lib/ordmap"
)

// Map is the codec for insertion-ordered mappings, generic over the
// key and value codecs. Each entry renders as "key=value" with '='
// escaped inside both halves; the whole pair is then escaped against
// ':' and the pairs are ':'-joined, so map entries nest inside the
// list separator discipline. Key order is a presentation property:
// Format follows the live map's insertion order, and two maps with the
// same entries in different orders are semantically equal.
//
// Maps have no merge rule.
type Map[K comparable, V any] struct {
	Key   Codec[K]
	Value Codec[V]
}

// Format renders the entries in iteration order. The empty map renders
// as the empty string.
func (codec Map[K, V]) Format(value *ordmap.Map[K, V]) string {
	entries := value.Entries()
	parts := make([]string, len(entries))
	for i, entry := range entries {
		pair := escape.Escape(codec.Key.Format(entry.Key), pairSeparator, escapeChar) +
			"=" +
			escape.Escape(codec.Value.Format(entry.Value), pairSeparator, escapeChar)
		parts[i] = escape.Escape(pair, listSeparator, escapeChar)
	}
	return strings.Join(parts, ":")
}

// Parse splits text on unescaped ':', then each segment on unescaped
// '='; every segment must yield exactly one key and one value. Entries
// are inserted in textual order and a duplicate key overwrites the
// earlier value (last insert wins). The empty string decodes to the
// empty map.
func (codec Map[K, V]) Parse(text string) (*ordmap.Map[K, V], error) {
	result := ordmap.New[K, V]()
	if text == "" {
		return result, nil
	}
	for _, segment := range escape.Split(text, listSeparator, escapeChar) {
		pair := escape.Split(segment, pairSeparator, escapeChar)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: map option expects key=value", ErrInvalidFormat)
		}
		key, err := codec.Key.Parse(pair[0])
		if err != nil {
			return nil, err
		}
		value, err := codec.Value.Parse(pair[1])
		if err != nil {
			return nil, err
		}
		result.Set(key, value)
	}
	return result, nil
}

// TypeName derives recursively: "int-to-bool-map".
func (codec Map[K, V]) TypeName() string {
	return fmt.Sprintf("%s-to-%s-map", codec.Key.TypeName(), codec.Value.TypeName())
}
