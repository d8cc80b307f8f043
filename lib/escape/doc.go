// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package escape implements the reserved-character escaping discipline
// shared by every textual option codec.
//
// Nested container encodings reserve one separator character per nesting
// level (':' for lists, '=' inside map pairs, '|' for tuples). Before
// embedding inner content next to a separator, the encoder escapes the
// content against that separator; the decoder splits on unescaped
// separators and removes exactly one level of escaping. Because [Escape]
// also escapes the escape character itself, levels compose: content
// escaped against '=' and then against ':' decodes cleanly by splitting
// on ':' first and '=' second.
//
// [Split] of the empty string yields a single empty segment, not zero
// segments. Container decoders that want "empty text means empty
// container" must special-case the empty string before splitting.
package escape
