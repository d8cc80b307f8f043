// Copyright 2026 The Kakoune Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package alias implements scoped command aliases: short names that
// expand to commands. Registries form a parent chain mirroring the
// editor's scope hierarchy (global, buffer, window); lookup falls back
// to the parent when the local registry has no entry, so an inner
// scope shadows its parent without modifying it.
package alias

import (
	"fmt"

	"github.com/anddam/kakoune/lib/ordmap"
)

// Registry maps alias names to the commands they expand to. A nil
// parent makes the registry a root (the global scope).
//
// A Registry is not safe for concurrent mutation.
type Registry struct {
	parent  *Registry
	aliases *ordmap.Map[string, string]
}

// NewRegistry returns an empty registry whose lookups fall back to
// parent. Pass nil for the root registry.
func NewRegistry(parent *Registry) *Registry {
	return &Registry{parent: parent, aliases: ordmap.New[string, string]()}
}

// Add registers alias to expand to command, overwriting any existing
// local entry. Alias names are limited to identifier characters, and
// the command must not be empty.
func (r *Registry) Add(alias, command string) error {
	if alias == "" {
		return fmt.Errorf("alias name is empty")
	}
	for i := 0; i < len(alias); i++ {
		if !isIdentifierChar(alias[i]) {
			return fmt.Errorf("invalid alias name %q: alias names are limited to identifier characters", alias)
		}
	}
	if command == "" {
		return fmt.Errorf("alias %q: command is empty", alias)
	}
	r.aliases.Set(alias, command)
	return nil
}

// Remove deletes the local entry for alias, and reports whether one
// existed. A parent entry shadowed by the removed one becomes visible
// again.
func (r *Registry) Remove(alias string) bool {
	return r.aliases.Delete(alias)
}

// Command returns the command that name expands to, consulting the
// parent chain when the local registry has no entry.
func (r *Registry) Command(name string) (string, bool) {
	if command, found := r.aliases.Get(name); found {
		return command, true
	}
	if r.parent != nil {
		return r.parent.Command(name)
	}
	return "", false
}

// AliasesFor returns every alias name that expands to command, parent
// entries first, in each registry's insertion order.
func (r *Registry) AliasesFor(command string) []string {
	var names []string
	if r.parent != nil {
		names = r.parent.AliasesFor(command)
	}
	for _, entry := range r.aliases.Entries() {
		if entry.Value == command {
			names = append(names, entry.Key)
		}
	}
	return names
}

// Aliases returns the local entries in insertion order, without the
// parent chain.
func (r *Registry) Aliases() []ordmap.Entry[string, string] {
	return r.aliases.Entries()
}

// isIdentifierChar reports whether c may appear in an alias name:
// ASCII letters, digits, '-' and '_'.
func isIdentifierChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_'
}
