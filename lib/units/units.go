// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package units defines strongly typed integer newtypes for the
// editor's distinct measurement axes. A line count, a column count, and
// a byte offset are all integers, but mixing them is always a bug; the
// distinct defined types make such mixing a compile error while keeping
// ordinary integer arithmetic available.
package units

// LineCount counts buffer lines, or measures a distance in lines.
type LineCount int

// ColumnCount counts display columns.
type ColumnCount int

// ByteCount counts bytes within a line or buffer.
type ByteCount int

// CharCount counts characters (codepoints), as opposed to bytes.
type CharCount int
