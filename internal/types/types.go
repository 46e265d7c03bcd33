// Package types defines every cross‑package data structure used by the ptree CLI.
package types

const (
	// Subcommand names.
	CommandTree       = "tree"
	CommandStatistics = "stats"
	CommandReport     = "report"

	// BranchGlyph precedes every entry that has a later visible sibling.
	BranchGlyph = "├── "
	// CornerGlyph precedes the last visible entry of a directory.
	CornerGlyph = "└── "
	// ContinuationPrefix extends the prefix below an entry that has later siblings.
	ContinuationPrefix = "│   "
	// BlankPrefix extends the prefix below the last entry of a directory.
	BlankPrefix = "    "

	// DefaultMaxDepth bounds how many directory levels below the root are rendered.
	DefaultMaxDepth = 4
	// DefaultProjectTitle names the project in the report banner.
	DefaultProjectTitle = "IkonGrind"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
}

// DirectoryEntry is a filesystem path visited during a single render pass.
// Depth is zero for the immediate children of the render root.
type DirectoryEntry struct {
	Name        string
	Path        string
	IsDirectory bool
	Depth       int
}

// StatisticsCategory groups file name extensions under one reporting label.
type StatisticsCategory struct {
	Label      string
	Extensions []string
}

// CategoryCount is the number of files that matched a category.
type CategoryCount struct {
	Label string
	Files int
}

// StatisticsReport holds per-category counts in category order.
type StatisticsReport struct {
	Categories []CategoryCount
	Total      int
}

// CatalogEntry pairs a project-relative path with a short description.
type CatalogEntry struct {
	Path        string
	Description string
}

// Catalog lists the key directories and documentation files of a project.
type Catalog struct {
	KeyDirectories     []CatalogEntry
	DocumentationFiles []CatalogEntry
}

// DefaultStatisticsCategories returns the extension families counted by default.
func DefaultStatisticsCategories() []StatisticsCategory {
	return []StatisticsCategory{
		{Label: "TypeScript", Extensions: []string{".ts", ".tsx"}},
		{Label: "JavaScript", Extensions: []string{".js", ".jsx"}},
		{Label: "JSON", Extensions: []string{".json"}},
		{Label: "Markdown", Extensions: []string{".md"}},
	}
}
