package commands

import (
	"strings"

	"github.com/tyemirov/ptree/internal/types"
)

const hiddenEntryPrefix = "."

// TreeOptions configures a TreeRenderer. The name sets are immutable values,
// so options can be shared between renderers and calls.
type TreeOptions struct {
	MaxDepth        int
	IgnoreSet       types.NameSet
	HiddenAllowList types.NameSet
	// Warn receives conditions that do not stop rendering, such as symlink
	// cycles or unreadable directories other than permission denials.
	Warn func(path string, warning error)
}

// DefaultTreeOptions returns options with the default depth bound, ignore set, and dotfile allow-list.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		MaxDepth:        types.DefaultMaxDepth,
		IgnoreSet:       types.DefaultIgnoreSet(),
		HiddenAllowList: types.DefaultHiddenAllowList(),
	}
}

// TreeRenderer renders directory trees using configured options.
type TreeRenderer struct {
	options TreeOptions
}

// NewTreeRenderer constructs a TreeRenderer. A nil Warn hook discards warnings.
func NewTreeRenderer(options TreeOptions) *TreeRenderer {
	if options.Warn == nil {
		options.Warn = func(string, error) {}
	}
	return &TreeRenderer{options: options}
}

// isVisible applies the hidden-entry rule and the ignore set to a base name.
func (treeRenderer *TreeRenderer) isVisible(name string) bool {
	if treeRenderer.options.IgnoreSet.Contains(name) {
		return false
	}
	if strings.HasPrefix(name, hiddenEntryPrefix) && !treeRenderer.options.HiddenAllowList.Contains(name) {
		return false
	}
	return true
}
