// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package option implements the type-directed text codec for option
// values: converting typed values to their canonical textual form,
// parsing that form back, and merging textual deltas into existing
// values with type-specific semantics.
//
// Every supported value shape has a [Codec]: a stateless triple of
// Format, Parse, and TypeName. Codecs for containers (lists, maps,
// tuples, prefixed lists) are generic over their element codecs and
// compose recursively; an int-list codec is List[int]{Elem: Int{}},
// and its type name derives recursively to "int-list".
//
// Separator precedence keeps nested encodings unambiguous: lists and
// maps join their elements with ':', map pairs use '=' inside each
// element, tuples use '|', and coordinates use a bare ','. At every
// nesting boundary the inner text is escaped (see lib/escape) against
// the outer separator, so any separator may appear inside decoded
// content.
//
// Merging is optional per shape. Codecs that support it implement
// [Adder]; [Add] is the single entry point and rejects codecs without
// merge semantics with [ErrUnsupported]. Integers add, lists append,
// flag sets union. Booleans, maps, tuples, and coordinates do not
// merge.
//
// All codecs are pure: Format never mutates its argument, Parse builds
// a fresh value, and a merge either applies in full or leaves the
// target untouched (the delta is decoded completely before the target
// is modified). Distinct values may be encoded and decoded from any
// number of goroutines concurrently.
package option
