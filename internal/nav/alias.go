package nav

import (
	"fmt"
	"sort"
)

// DefaultAliases maps external names that have no region of their own onto a
// declared section. The header's "Documentation" trigger uses "docs".
var DefaultAliases = map[string]string{
	"docs": SectionFeatures,
}

// AliasTable resolves external section names to declared section keys.
// Resolution is a single hop: an alias always names a declared key.
type AliasTable struct {
	targets map[string]string
}

// NewAliasTable validates aliases against the declared keys.
// An alias may not shadow a declared key and must point at one.
func NewAliasTable(declared []string, aliases map[string]string) (AliasTable, error) {
	known := make(map[string]struct{}, len(declared))
	for _, k := range declared {
		known[k] = struct{}{}
	}
	targets := make(map[string]string, len(aliases))
	for name, target := range aliases {
		if name == "" {
			return AliasTable{}, fmt.Errorf("%w: empty alias name", ErrInvalidAlias)
		}
		if _, ok := known[name]; ok {
			return AliasTable{}, fmt.Errorf("%w: %q shadows a declared section", ErrInvalidAlias, name)
		}
		if _, ok := known[target]; !ok {
			return AliasTable{}, fmt.Errorf("%w: %q -> %q is not a declared section", ErrInvalidAlias, name, target)
		}
		targets[name] = target
	}
	return AliasTable{targets: targets}, nil
}

// Lookup returns the declared key an alias points at.
func (t AliasTable) Lookup(name string) (string, bool) {
	target, ok := t.targets[name]
	return target, ok
}

// Names returns the alias names in sorted order.
func (t AliasTable) Names() []string {
	names := make([]string, 0, len(t.targets))
	for n := range t.targets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of aliases.
func (t AliasTable) Len() int {
	return len(t.targets)
}
