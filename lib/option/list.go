// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"strings"

	"github.com/anddam/kakoune/lib/escape"
)

// List is the codec for ordered homogeneous sequences, generic over
// the element codec. Elements are joined with ':', each escaped so
// that element content may itself contain ':' or '\'. Merge appends
// the decoded delta to the existing sequence.
type List[T any] struct {
	Elem Codec[T]
}

// Format renders the elements in order, ':'-joined. The empty list
// renders as the empty string.
func (codec List[T]) Format(value []T) string {
	parts := make([]string, len(value))
	for i, element := range value {
		parts[i] = escape.Escape(codec.Elem.Format(element), listSeparator, escapeChar)
	}
	return strings.Join(parts, ":")
}

// Parse splits text on unescaped ':' and decodes each segment with the
// element codec. The empty string decodes to the empty list: splitting
// "" yields one empty segment, which would otherwise decode as a
// single empty element.
func (codec List[T]) Parse(text string) ([]T, error) {
	if text == "" {
		return nil, nil
	}
	segments := escape.Split(text, listSeparator, escapeChar)
	list := make([]T, 0, len(segments))
	for _, segment := range segments {
		element, err := codec.Elem.Parse(segment)
		if err != nil {
			return nil, err
		}
		list = append(list, element)
	}
	return list, nil
}

// Add decodes text as a full list and appends its elements, in order,
// to value. Reports whether the delta list was non-empty. A decode
// failure leaves value untouched.
func (codec List[T]) Add(value *[]T, text string) (bool, error) {
	delta, err := codec.Parse(text)
	if err != nil {
		return false, err
	}
	*value = append(*value, delta...)
	return len(delta) > 0, nil
}

// TypeName derives recursively from the element codec: "int-list".
func (codec List[T]) TypeName() string {
	return codec.Elem.TypeName() + "-list"
}
