package qualifiers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPrefix   = errors.New("qualifier prefix must be non-empty and end with ':'")
	ErrDuplicatePrefix = errors.New("duplicate qualifier prefix")
)

// Definition describes a single search qualifier such as "language:"
type Definition struct {
	Prefix string `yaml:"prefix" json:"prefix"` // includes the trailing ':'
	Label  string `yaml:"label" json:"label"`
	Icon   string `yaml:"icon" json:"icon"`
}

// Name returns the prefix without its trailing colon
func (d Definition) Name() string {
	return strings.TrimSuffix(d.Prefix, ":")
}

// Registry is an ordered, immutable set of qualifier definitions.
//
// Lookups are first-registered-wins: when two prefixes could match at the same
// position, the one that appears earlier in the registry is returned. No
// longest-match resolution is attempted.
type Registry struct {
	defs []Definition
}

// New builds a registry from definitions in the given order
func New(defs ...Definition) (*Registry, error) {
	seen := make(map[string]bool, len(defs))
	copied := make([]Definition, 0, len(defs))

	for _, def := range defs {
		if len(def.Prefix) < 2 || !strings.HasSuffix(def.Prefix, ":") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, def.Prefix)
		}
		key := strings.ToLower(def.Prefix)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePrefix, def.Prefix)
		}
		seen[key] = true
		copied = append(copied, def)
	}

	return &Registry{defs: copied}, nil
}

// MustNew is like New but panics on invalid definitions
func MustNew(defs ...Definition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the first definition whose prefix matches text at pos,
// compared case-insensitively.
func (r *Registry) Lookup(text string, pos int) (Definition, bool) {
	if r == nil || pos < 0 || pos >= len(text) {
		return Definition{}, false
	}
	rest := text[pos:]
	for _, def := range r.defs {
		if hasPrefixFold(rest, def.Prefix) {
			return def, true
		}
	}
	return Definition{}, false
}

// MatchesAt reports whether any registered prefix starts at pos
func (r *Registry) MatchesAt(text string, pos int) bool {
	_, ok := r.Lookup(text, pos)
	return ok
}

// Get finds a definition by prefix or bare name, ignoring case
func (r *Registry) Get(qualifier string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	if !strings.HasSuffix(qualifier, ":") {
		qualifier += ":"
	}
	for _, def := range r.defs {
		if strings.EqualFold(def.Prefix, qualifier) {
			return def, true
		}
	}
	return Definition{}, false
}

// Definitions returns a copy of the registry contents in order
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}
	defs := make([]Definition, len(r.defs))
	copy(defs, r.defs)
	return defs
}

// Prefixes returns the registered prefixes in order
func (r *Registry) Prefixes() []string {
	if r == nil {
		return nil
	}
	prefixes := make([]string, len(r.defs))
	for i, def := range r.defs {
		prefixes[i] = def.Prefix
	}
	return prefixes
}

// Len returns the number of definitions
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.defs)
}

// hasPrefixFold is an ASCII case-insensitive strings.HasPrefix. Non-ASCII
// bytes must match exactly, so a prefix never matches part of a multi-byte rune.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(s[i]) != lowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
