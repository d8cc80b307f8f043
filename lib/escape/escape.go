// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package escape

import "strings"

// Escape returns text with escapeChar inserted before every occurrence
// of reserved and before every occurrence of escapeChar itself. The
// result round-trips through Split with the same pair of characters.
func Escape(text string, reserved, escapeChar byte) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == reserved || text[i] == escapeChar {
			builder.WriteByte(escapeChar)
		}
		builder.WriteByte(text[i])
	}
	return builder.String()
}

// Split splits text on every unescaped occurrence of separator and
// removes exactly one escapeChar prefix from every escaped separator or
// escaped escapeChar. An escapeChar followed by any other byte (or
// ending the text) is kept literally.
//
// Splitting the empty string yields a single empty segment. A trailing
// unescaped separator does not produce a trailing empty segment.
func Split(text string, separator, escapeChar byte) []string {
	segments := []string{}
	var segment strings.Builder
	for i := 0; i < len(text); {
		switch {
		case text[i] == escapeChar && i+1 < len(text) && (text[i+1] == separator || text[i+1] == escapeChar):
			segment.WriteByte(text[i+1])
			i += 2
		case text[i] == separator:
			segments = append(segments, segment.String())
			segment.Reset()
			i++
		default:
			segment.WriteByte(text[i])
			i++
		}
	}
	if segment.Len() > 0 || len(segments) == 0 {
		segments = append(segments, segment.String())
	}
	return segments
}

// Cut slices text around the first unescaped occurrence of separator,
// in the manner of strings.Cut. Neither half is unescaped; callers that
// need the separator's escaping removed pass the halves through Split.
func Cut(text string, separator, escapeChar byte) (before, after string, found bool) {
	for i := 0; i < len(text); {
		if text[i] == escapeChar && i+1 < len(text) && (text[i+1] == separator || text[i+1] == escapeChar) {
			i += 2
			continue
		}
		if text[i] == separator {
			return text[:i], text[i+1:], true
		}
		i++
	}
	return text, "", false
}

// Join concatenates elements with separator between them. It performs
// no escaping; callers escape each element first when the elements can
// contain the separator.
func Join(elements []string, separator byte) string {
	return strings.Join(elements, string(separator))
}
