// Package commands contains the core logic for data collection for each command.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tyemirov/ptree/internal/types"
)

const (
	// errorWriteLineFormat is used when a tree line cannot be written to the output.
	errorWriteLineFormat = "writing tree line for %s: %w"
	// warningReadDirectoryFormat is used when a directory cannot be listed.
	warningReadDirectoryFormat = "reading directory %s: %w"
	// symlinkCycleMessageFormat describes a directory that resolves to one of its ancestors.
	symlinkCycleMessageFormat = "%s resolves to %s, which is already being rendered"
)

// ErrSymlinkCycle marks a directory that resolves to one of its own ancestors.
var ErrSymlinkCycle = errors.New("symlink cycle")

// SymlinkCycleError reports a directory that was listed but not expanded
// because its resolved location is already on the current rendering path.
type SymlinkCycleError struct {
	Path   string
	Target string
}

func (cycleError *SymlinkCycleError) Error() string {
	return fmt.Sprintf(symlinkCycleMessageFormat, cycleError.Path, cycleError.Target)
}

func (cycleError *SymlinkCycleError) Unwrap() error {
	return ErrSymlinkCycle
}

// Render returns the tree of directory as text, one newline-terminated line per entry.
func (treeRenderer *TreeRenderer) Render(directory string) string {
	var builder strings.Builder
	// strings.Builder never returns a write error.
	_ = treeRenderer.RenderTo(&builder, directory)
	return builder.String()
}

// RenderTo writes the tree of directory to writer line by line.
// Listing failures are contained to the affected subtree; only write
// failures are returned.
func (treeRenderer *TreeRenderer) RenderTo(writer io.Writer, directory string) error {
	walk := &treeWalk{
		renderer:  treeRenderer,
		writer:    writer,
		ancestors: make(map[string]struct{}),
	}
	if canonicalRoot, resolveError := canonicalDirectory(directory); resolveError == nil {
		walk.ancestors[canonicalRoot] = struct{}{}
	}
	return walk.renderDirectory(directory, "", 0)
}

// treeWalk holds the state of one render pass: the output and the resolved
// directories on the current recursion path.
type treeWalk struct {
	renderer  *TreeRenderer
	writer    io.Writer
	ancestors map[string]struct{}
}

func (walk *treeWalk) renderDirectory(directoryPath string, prefix string, depth int) error {
	if depth >= walk.renderer.options.MaxDepth {
		return nil
	}

	entries, listError := walk.listEntries(directoryPath, depth)
	if listError != nil {
		if !errors.Is(listError, fs.ErrPermission) {
			walk.renderer.options.Warn(directoryPath, fmt.Errorf(warningReadDirectoryFormat, directoryPath, listError))
		}
		return nil
	}

	for entryIndex, entry := range entries {
		isLastEntry := entryIndex == len(entries)-1
		glyph := types.BranchGlyph
		childPrefix := prefix + types.ContinuationPrefix
		if isLastEntry {
			glyph = types.CornerGlyph
			childPrefix = prefix + types.BlankPrefix
		}

		if _, writeError := io.WriteString(walk.writer, prefix+glyph+entry.Name+"\n"); writeError != nil {
			return fmt.Errorf(errorWriteLineFormat, entry.Path, writeError)
		}

		if !entry.IsDirectory {
			continue
		}
		if descendError := walk.descend(entry, childPrefix); descendError != nil {
			return descendError
		}
	}
	return nil
}

// descend renders a child directory unless it resolves to a directory that is
// already being rendered higher up the current path.
func (walk *treeWalk) descend(entry types.DirectoryEntry, childPrefix string) error {
	canonicalPath, resolveError := canonicalDirectory(entry.Path)
	if resolveError != nil {
		return walk.renderDirectory(entry.Path, childPrefix, entry.Depth+1)
	}
	if _, onPath := walk.ancestors[canonicalPath]; onPath {
		walk.renderer.options.Warn(entry.Path, &SymlinkCycleError{Path: entry.Path, Target: canonicalPath})
		return nil
	}

	walk.ancestors[canonicalPath] = struct{}{}
	defer delete(walk.ancestors, canonicalPath)
	return walk.renderDirectory(entry.Path, childPrefix, entry.Depth+1)
}

// listEntries returns the visible children of directoryPath sorted by name.
// Filtering happens before sorting, so hidden or ignored names never affect
// which visible entry is last.
func (walk *treeWalk) listEntries(directoryPath string, depth int) ([]types.DirectoryEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	visibleEntries := make([]types.DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !walk.renderer.isVisible(entryName) {
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		visibleEntries = append(visibleEntries, types.DirectoryEntry{
			Name:        entryName,
			Path:        entryPath,
			IsDirectory: isDirectoryEntry(directoryEntry, entryPath),
			Depth:       depth,
		})
	}

	sort.SliceStable(visibleEntries, func(left, right int) bool {
		return visibleEntries[left].Name < visibleEntries[right].Name
	})
	return visibleEntries, nil
}

// isDirectoryEntry follows symbolic links, so a link to a directory is
// rendered as a directory and a dangling link as a plain entry.
func isDirectoryEntry(directoryEntry fs.DirEntry, entryPath string) bool {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir()
	}
	targetInfo, statError := os.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

// canonicalDirectory returns the absolute, symlink-free form of path.
func canonicalDirectory(path string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(path)
	if absolutePathError != nil {
		return "", absolutePathError
	}
	return filepath.EvalSymlinks(absolutePath)
}
