package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyemirov/ptree/internal/types"
)

const (
	// errorStatisticsWalkFormat is used when the statistics root cannot be walked.
	errorStatisticsWalkFormat = "counting files under %s: %w"
	walkRoot                  = "."
)

// CountStatistics counts the entries under root whose names end with one of
// each category's extensions. Like a recursive glob it descends into every
// directory, including hidden and ignored ones. Directory names are matched
// as well as file names, and symbolic links are not followed. Unreadable
// subdirectories are skipped; failures other than permission denials are
// passed to warn with their full path. The walk stops when ctx is cancelled.
func CountStatistics(ctx context.Context, root string, categories []types.StatisticsCategory, warn func(path string, warning error)) (types.StatisticsReport, error) {
	var rootedWarn func(string, error)
	if warn != nil {
		rootedWarn = func(relativePath string, warning error) {
			warn(filepath.Join(root, filepath.FromSlash(relativePath)), warning)
		}
	}
	report, countError := CountStatisticsFS(ctx, os.DirFS(root), categories, rootedWarn)
	if countError != nil {
		return types.StatisticsReport{}, fmt.Errorf(errorStatisticsWalkFormat, root, countError)
	}
	return report, nil
}

// CountStatisticsFS counts matching entries in fileSystem the same way
// CountStatistics does. Paths given to warn are relative to the file system root.
func CountStatisticsFS(ctx context.Context, fileSystem fs.FS, categories []types.StatisticsCategory, warn func(path string, warning error)) (types.StatisticsReport, error) {
	if warn == nil {
		warn = func(string, error) {}
	}
	counts := make([]int, len(categories))

	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if contextError := ctx.Err(); contextError != nil {
			return contextError
		}
		if walkError != nil {
			if currentPath == walkRoot {
				return walkError
			}
			if !errors.Is(walkError, fs.ErrPermission) {
				warn(currentPath, walkError)
			}
			if directoryEntry != nil && directoryEntry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if currentPath == walkRoot {
			return nil
		}
		entryName := directoryEntry.Name()
		for categoryIndex, category := range categories {
			if hasAnySuffix(entryName, category.Extensions) {
				counts[categoryIndex]++
			}
		}
		return nil
	}

	if walkError := fs.WalkDir(fileSystem, walkRoot, walkFunction); walkError != nil {
		return types.StatisticsReport{}, walkError
	}

	report := types.StatisticsReport{Categories: make([]types.CategoryCount, 0, len(categories))}
	for categoryIndex, category := range categories {
		report.Categories = append(report.Categories, types.CategoryCount{Label: category.Label, Files: counts[categoryIndex]})
		report.Total += counts[categoryIndex]
	}
	return report, nil
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
