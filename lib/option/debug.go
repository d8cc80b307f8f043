// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

package option

// DebugFlags selects which debug diagnostics the editor emits. It is a
// flag enumeration; any combination of the bits below is legal.
type DebugFlags int

const (
	// DebugHooks traces hook execution.
	DebugHooks DebugFlags = 1 << iota
	// DebugShell traces shell evaluation.
	DebugShell
	// DebugProfile records per-command timing.
	DebugProfile
	// DebugKeys logs every key the editor processes.
	DebugKeys
)

// debugFlagsDesc is the descriptor table for DebugFlags, in
// declaration order.
var debugFlagsDesc = []Desc[DebugFlags]{
	{DebugHooks, "hooks"},
	{DebugShell, "shell"},
	{DebugProfile, "profile"},
	{DebugKeys, "keys"},
}

// DebugFlagsCodec returns the codec for the "debug" option, with type
// name "flags(hooks|shell|profile|keys)".
func DebugFlagsCodec() Flags[DebugFlags] {
	return Flags[DebugFlags]{Desc: debugFlagsDesc}
}
