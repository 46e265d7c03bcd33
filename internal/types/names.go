package types

import "sort"

var (
	defaultIgnoredNames = []string{
		".git",
		"node_modules",
		".env",
		"dist",
		"build",
		".vscode",
		".idea",
	}
	defaultHiddenAllowList = []string{
		".env.example",
		".gitignore",
	}
)

// NameSet is an immutable set of base names. The zero value is an empty set.
type NameSet struct {
	members map[string]struct{}
}

// NewNameSet copies the provided names into a new set. Empty names are dropped.
func NewNameSet(names ...string) NameSet {
	members := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		members[name] = struct{}{}
	}
	return NameSet{members: members}
}

// DefaultIgnoreSet returns the directory names excluded from every tree:
// version control, dependency manager, environment, build, and IDE artifacts.
func DefaultIgnoreSet() NameSet {
	return NewNameSet(defaultIgnoredNames...)
}

// DefaultHiddenAllowList returns the dotfiles that stay visible in a tree.
func DefaultHiddenAllowList() NameSet {
	return NewNameSet(defaultHiddenAllowList...)
}

// Contains reports whether name is a member of the set.
func (set NameSet) Contains(name string) bool {
	_, exists := set.members[name]
	return exists
}

// Names returns the members in ascending order.
func (set NameSet) Names() []string {
	names := make([]string, 0, len(set.members))
	for name := range set.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Union returns a new set holding the members of both sets.
func (set NameSet) Union(other NameSet) NameSet {
	return NewNameSet(append(set.Names(), other.Names()...)...)
}
