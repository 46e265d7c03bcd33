package commands_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyemirov/ptree/internal/commands"
	"github.com/tyemirov/ptree/internal/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

type recordedWarning struct {
	path    string
	warning error
}

func createLayout(t *testing.T, root string, directories []string, files []string) {
	t.Helper()
	for _, directory := range directories {
		if err := os.MkdirAll(filepath.Join(root, directory), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", directory, err)
		}
	}
	for _, file := range files {
		filePath := filepath.Join(root, file)
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", file, err)
		}
		if err := os.WriteFile(filePath, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
}

func renderWithDepth(root string, maxDepth int) string {
	options := commands.DefaultTreeOptions()
	options.MaxDepth = maxDepth
	return commands.NewTreeRenderer(options).Render(root)
}

func TestRenderScenarios(t *testing.T) {
	testCases := []struct {
		name        string
		directories []string
		files       []string
		maxDepth    int
		expected    string
	}{
		{
			name:     "files_and_nested_directory",
			files:    []string{"a.txt", "b.txt", "z/c.txt"},
			maxDepth: 4,
			expected: "├── a.txt\n" +
				"├── b.txt\n" +
				"└── z\n" +
				"    └── c.txt\n",
		},
		{
			name:        "ignored_git_directory",
			directories: []string{".git/objects"},
			files:       []string{"README.md", ".git/HEAD"},
			maxDepth:    4,
			expected:    "└── README.md\n",
		},
		{
			name:     "depth_one_truncates_subtree",
			files:    []string{"x/y/f.txt"},
			maxDepth: 1,
			expected: "└── x\n",
		},
		{
			name:     "continuation_prefix_under_non_last_directory",
			files:    []string{"a/inner.txt", "b.txt"},
			maxDepth: 4,
			expected: "├── a\n" +
				"│   └── inner.txt\n" +
				"└── b.txt\n",
		},
		{
			name:     "allow_listed_dotfiles_are_shown",
			files:    []string{".env.example", ".gitignore", ".npmrc", "main.go"},
			maxDepth: 4,
			expected: "├── .env.example\n" +
				"├── .gitignore\n" +
				"└── main.go\n",
		},
		{
			name:     "ignored_names_apply_to_files_too",
			files:    []string{"build", "dist/bundle.js", ".env", "app.ts"},
			maxDepth: 4,
			expected: "└── app.ts\n",
		},
		{
			name:     "uppercase_sorts_before_lowercase",
			files:    []string{"b.txt", "Z.txt", "a.txt"},
			maxDepth: 4,
			expected: "├── Z.txt\n" +
				"├── a.txt\n" +
				"└── b.txt\n",
		},
		{
			name:        "empty_directory",
			directories: []string{},
			maxDepth:    4,
			expected:    "",
		},
		{
			name:     "non_positive_depth_renders_nothing",
			files:    []string{"a.txt"},
			maxDepth: 0,
			expected: "",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			createLayout(t, root, testCase.directories, testCase.files)
			rendered := renderWithDepth(root, testCase.maxDepth)
			if rendered != testCase.expected {
				t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", testCase.expected, rendered)
			}
		})
	}
}

func TestRenderFilteredTrailingEntryDoesNotAffectLastGlyph(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, []string{"node_modules/pkg"}, []string{"index.js", "lib/util.js", "lib/~backup/.keep"})

	rendered := renderWithDepth(root, types.DefaultMaxDepth)
	expected := "├── index.js\n" +
		"└── lib\n" +
		"    ├── util.js\n" +
		"    └── ~backup\n"
	if rendered != expected {
		t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestRenderDepthBound(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"l1/l2/l3/l4/l5/deep.txt"})

	for maxDepth := 1; maxDepth <= 6; maxDepth++ {
		rendered := renderWithDepth(root, maxDepth)
		lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
		if len(lines) != maxDepth {
			t.Fatalf("depth %d: expected %d lines, got %d:\n%s", maxDepth, maxDepth, len(lines), rendered)
		}
		for lineIndex, line := range lines {
			expectedIndent := strings.Repeat(types.BlankPrefix, lineIndex)
			if !strings.HasPrefix(line, expectedIndent+types.CornerGlyph) {
				t.Fatalf("depth %d line %d has wrong indentation: %q", maxDepth, lineIndex, line)
			}
		}
	}
}

func TestRenderCustomIgnoreSet(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"vendor/lib.go", "node_modules/x.js", "main.go"})

	options := commands.DefaultTreeOptions()
	options.IgnoreSet = types.NewNameSet("vendor")
	rendered := commands.NewTreeRenderer(options).Render(root)
	expected := "├── main.go\n" +
		"└── node_modules\n" +
		"    └── x.js\n"
	if rendered != expected {
		t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestRenderPermissionDeniedIsContained(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	createLayout(t, root, nil, []string{"locked/secret.txt", "open/visible.txt"})
	lockedPath := filepath.Join(root, "locked")
	if err := os.Chmod(lockedPath, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(lockedPath, 0o755)
	})

	var warnings []recordedWarning
	options := commands.DefaultTreeOptions()
	options.Warn = func(path string, warning error) {
		warnings = append(warnings, recordedWarning{path: path, warning: warning})
	}
	rendered := commands.NewTreeRenderer(options).Render(root)
	expected := "├── locked\n" +
		"└── open\n" +
		"    └── visible.txt\n"
	if rendered != expected {
		t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", expected, rendered)
	}
	if len(warnings) != 0 {
		t.Fatalf("permission denial must be silent, got %v", warnings)
	}
}

func TestRenderSymlinkCycleIsListedButNotExpanded(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"pkg/file.txt"})
	if err := os.Symlink(root, filepath.Join(root, "pkg", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	var warnings []recordedWarning
	options := commands.DefaultTreeOptions()
	options.Warn = func(path string, warning error) {
		warnings = append(warnings, recordedWarning{path: path, warning: warning})
	}
	rendered := commands.NewTreeRenderer(options).Render(root)
	expected := "└── pkg\n" +
		"    ├── file.txt\n" +
		"    └── loop\n"
	if rendered != expected {
		t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", expected, rendered)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
	if !errors.Is(warnings[0].warning, commands.ErrSymlinkCycle) {
		t.Fatalf("expected symlink cycle warning, got %v", warnings[0].warning)
	}
	var cycleError *commands.SymlinkCycleError
	if !errors.As(warnings[0].warning, &cycleError) || cycleError.Path != filepath.Join(root, "pkg", "loop") {
		t.Fatalf("unexpected cycle details: %v", warnings[0].warning)
	}
}

func TestRenderFollowsSymlinkToSiblingDirectory(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"real/data.txt"})
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	rendered := renderWithDepth(root, types.DefaultMaxDepth)
	expected := "├── alias\n" +
		"│   └── data.txt\n" +
		"├── dangling\n" +
		"└── real\n" +
		"    └── data.txt\n"
	if rendered != expected {
		t.Fatalf("unexpected tree\nexpected:\n%s\ngot:\n%s", expected, rendered)
	}
}

func TestRenderToPropagatesWriteFailure(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"a.txt"})

	renderError := commands.NewTreeRenderer(commands.DefaultTreeOptions()).RenderTo(failingWriter{}, root)
	if renderError == nil {
		t.Fatalf("expected write failure to be returned")
	}
	if !strings.Contains(renderError.Error(), "sink closed") {
		t.Fatalf("expected wrapped writer error, got %v", renderError)
	}
}

func TestRenderIsReentrant(t *testing.T) {
	root := t.TempDir()
	createLayout(t, root, nil, []string{"a/b/c.txt", "d.txt"})
	renderer := commands.NewTreeRenderer(commands.DefaultTreeOptions())

	first := renderer.Render(root)
	second := renderer.Render(root)
	if first != second {
		t.Fatalf("repeated renders differ:\n%s\n---\n%s", first, second)
	}
}
