// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package ordmap provides a generic map that remembers insertion order.
//
// The built-in Go map iterates in randomized order, which is unusable
// for option values: their textual encoding must be stable so that a
// value formats identically every time it is displayed or persisted.
// ordmap keeps entries in a slice in first-insertion order and an index
// map for O(1) lookup. Setting an existing key overwrites its value in
// place without moving it; ordering is a presentation property, not a
// semantic one.
//
// A Map is not safe for concurrent mutation; callers that share one
// across goroutines own the synchronization.
package ordmap
