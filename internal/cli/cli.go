// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tyemirov/ptree/internal/commands"
	"github.com/tyemirov/ptree/internal/config"
	"github.com/tyemirov/ptree/internal/output"
	"github.com/tyemirov/ptree/internal/services/clipboard"
	"github.com/tyemirov/ptree/internal/types"
	"github.com/tyemirov/ptree/internal/utils"
)

const (
	defaultPath          = "."
	rootUse              = "ptree"
	rootShortDescription = "ptree command line interface"
	rootLongDescription  = `ptree prints the structure of a project directory.
It renders a depth-limited tree that skips dependency, build, and IDE directories,
counts source and documentation files, and prints a project report.`
	versionTemplate = "ptree version: {{.Version}}\n"

	pathArgumentUsage          = " [path]"
	treeUse                    = types.CommandTree + pathArgumentUsage
	statisticsUse              = types.CommandStatistics + pathArgumentUsage
	reportUse                  = types.CommandReport + pathArgumentUsage
	treeAlias                  = "t"
	statisticsAlias            = "s"
	reportAlias                = "r"
	treeShortDescription       = "display directory tree (" + treeAlias + ")"
	statisticsShortDescription = "count project files by type (" + statisticsAlias + ")"
	reportShortDescription     = "print the full project report (" + reportAlias + ")"

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `List directories and files below a path, up to --depth levels deep.
Hidden entries other than .env.example and .gitignore are skipped, as are
.git, node_modules, .env, dist, build, .vscode, and .idea. Use -e to skip more names.

--copy accepts an optional value (yes/no, on/off, true/false, 1/0). In
"--copy no" the word is read as the value unless a directory with that name
exists, in which case it is the path; write --copy=no to be explicit.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Render two levels of the current directory
  ptree tree --depth 2

  # Also skip vendor and coverage directories
  ptree tree -e vendor -e coverage ./service`

	// statisticsLongDescription provides detailed help for the stats command.
	statisticsLongDescription = `Count TypeScript, JavaScript, JSON, and Markdown files anywhere below a path.`
	// statisticsUsageExample demonstrates stats command usage.
	statisticsUsageExample = `  # Count files in the current project and copy the result
  ptree stats --copy`

	// reportLongDescription provides detailed help for the report command.
	reportLongDescription = `Print the project banner, the directory tree, file statistics,
key directories, and documentation files.`
	// reportUsageExample demonstrates report command usage.
	reportUsageExample = `  # Full report for the current directory
  ptree report

  # Tree and statistics only, with a custom banner
  ptree report --catalog=false --title Backend ./backend`

	depthFlagShorthand          = "d"
	excludeFlagShorthand        = "e"
	depthFlagDescription        = "maximum number of directory levels to render"
	excludeFlagDescription      = "additional name to skip (repeatable)"
	titleFlagDescription        = "project name shown in the report banner"
	statisticsFlagDescription   = "include file statistics"
	catalogFlagDescription      = "include key directories and documentation files"
	copyFlagDescription         = "copy the output to the system clipboard"
	treeWarningMessage          = "tree rendering skipped a directory"
	statisticsWarningMessage    = "file statistics skipped a directory"
	errorAbsolutePathFormat     = "abs failed for '%s': %w"
	errorPathMissingFormat      = "path '%s' does not exist"
	errorStatFormat             = "stat failed for '%s': %w"
	errorNotDirectoryFormat     = "path '%s' is not a directory"
	errorCopyFormat             = "copying output: %w"
	errorReportAssemblyFormat   = "assembling report for %s: %w"
	errorClipboardMissingFormat = "--%s requested but no clipboard is configured"
)

// Dependencies are the collaborators shared by every command.
type Dependencies struct {
	Logger *zap.Logger
	Copier clipboard.Copier
}

// Execute runs the ptree application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{
		Logger: logger,
		Copier: clipboard.NewSystemClipboard(),
	})
	rootCommand.SetArgs(joinSwitchValues(rootCommand, os.Args[1:], existingDirectory))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command and its subcommands.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Version:       utils.GetApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.AddCommand(
		createTreeCommand(dependencies),
		createStatisticsCommand(dependencies),
		createReportCommand(dependencies),
	)
	return rootCommand
}

// addTreeFlags registers the flags that shape the rendered tree.
func addTreeFlags(command *cobra.Command) {
	command.Flags().IntP(config.DepthKey, depthFlagShorthand, types.DefaultMaxDepth, depthFlagDescription)
	command.Flags().StringSliceP(config.ExcludeKey, excludeFlagShorthand, nil, excludeFlagDescription)
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(dependencies Dependencies) *cobra.Command {
	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, rootPath, prepareError := prepareCommand(command, arguments)
			if prepareError != nil {
				return prepareError
			}
			renderer := newTreeRenderer(configuration, dependencies.Logger)
			return writeOutput(command, configuration.Copy, dependencies.Copier, func(writer io.Writer) error {
				return renderer.RenderTo(writer, rootPath.AbsolutePath)
			})
		},
	}
	addTreeFlags(treeCommand)
	addSwitchFlag(treeCommand, config.CopyKey, false, copyFlagDescription)
	return treeCommand
}

// createStatisticsCommand returns the stats subcommand.
func createStatisticsCommand(dependencies Dependencies) *cobra.Command {
	statisticsCommand := &cobra.Command{
		Use:     statisticsUse,
		Aliases: []string{statisticsAlias},
		Short:   statisticsShortDescription,
		Long:    statisticsLongDescription,
		Example: statisticsUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, rootPath, prepareError := prepareCommand(command, arguments)
			if prepareError != nil {
				return prepareError
			}
			report, countError := commands.CountStatistics(command.Context(), rootPath.AbsolutePath, types.DefaultStatisticsCategories(), utils.WarningLogger(dependencies.Logger, statisticsWarningMessage))
			if countError != nil {
				return countError
			}
			return writeOutput(command, configuration.Copy, dependencies.Copier, func(writer io.Writer) error {
				return output.WriteStatistics(writer, report)
			})
		},
	}
	addSwitchFlag(statisticsCommand, config.CopyKey, false, copyFlagDescription)
	return statisticsCommand
}

// createReportCommand returns the report subcommand.
func createReportCommand(dependencies Dependencies) *cobra.Command {
	reportCommand := &cobra.Command{
		Use:     reportUse,
		Aliases: []string{reportAlias},
		Short:   reportShortDescription,
		Long:    reportLongDescription,
		Example: reportUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, rootPath, prepareError := prepareCommand(command, arguments)
			if prepareError != nil {
				return prepareError
			}
			report, assembleError := assembleReport(command, configuration, rootPath.AbsolutePath, dependencies.Logger)
			if assembleError != nil {
				return fmt.Errorf(errorReportAssemblyFormat, rootPath.AbsolutePath, assembleError)
			}
			return writeOutput(command, configuration.Copy, dependencies.Copier, func(writer io.Writer) error {
				return output.WriteReport(writer, report)
			})
		},
	}
	addTreeFlags(reportCommand)
	reportCommand.Flags().String(config.TitleKey, types.DefaultProjectTitle, titleFlagDescription)
	addSwitchFlag(reportCommand, config.StatisticsKey, true, statisticsFlagDescription)
	addSwitchFlag(reportCommand, config.CatalogKey, true, catalogFlagDescription)
	addSwitchFlag(reportCommand, config.CopyKey, false, copyFlagDescription)
	return reportCommand
}

// assembleReport renders the tree and counts statistics concurrently. Each
// part is collected separately and printed in a fixed order afterwards.
func assembleReport(command *cobra.Command, configuration config.ApplicationConfiguration, rootPath string, logger *zap.Logger) (output.Report, error) {
	report := output.Report{Title: configuration.Title}
	if configuration.Catalog {
		catalog := commands.DefaultCatalog()
		report.Catalog = &catalog
	}

	group, groupContext := errgroup.WithContext(command.Context())
	group.Go(func() error {
		report.Tree = newTreeRenderer(configuration, logger).Render(rootPath)
		return nil
	})
	if configuration.Statistics {
		group.Go(func() error {
			statistics, countError := commands.CountStatistics(groupContext, rootPath, types.DefaultStatisticsCategories(), utils.WarningLogger(logger, statisticsWarningMessage))
			if countError != nil {
				return countError
			}
			report.Statistics = &statistics
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return output.Report{}, waitError
	}
	return report, nil
}

// prepareCommand resolves the configuration and the root directory of a command.
func prepareCommand(command *cobra.Command, arguments []string) (config.ApplicationConfiguration, types.ValidatedPath, error) {
	configuration, configurationError := config.LoadApplicationConfiguration(command.Flags())
	if configurationError != nil {
		return config.ApplicationConfiguration{}, types.ValidatedPath{}, configurationError
	}
	inputPath := defaultPath
	if len(arguments) > 0 {
		inputPath = arguments[0]
	}
	rootPath, resolveError := resolveDirectory(inputPath)
	if resolveError != nil {
		return config.ApplicationConfiguration{}, types.ValidatedPath{}, resolveError
	}
	return configuration, rootPath, nil
}

func newTreeRenderer(configuration config.ApplicationConfiguration, logger *zap.Logger) *commands.TreeRenderer {
	options := commands.DefaultTreeOptions()
	options.MaxDepth = configuration.Depth
	options.IgnoreSet = configuration.IgnoreSet()
	options.Warn = utils.WarningLogger(logger, treeWarningMessage)
	return commands.NewTreeRenderer(options)
}

// writeOutput streams produced output to the command's stdout. When copying
// is requested the output is also captured and sent to the clipboard.
func writeOutput(command *cobra.Command, copyEnabled bool, copier clipboard.Copier, produce func(io.Writer) error) error {
	if !copyEnabled {
		return produce(command.OutOrStdout())
	}
	if copier == nil {
		return fmt.Errorf(errorClipboardMissingFormat, config.CopyKey)
	}
	var captured bytes.Buffer
	if produceError := produce(io.MultiWriter(command.OutOrStdout(), &captured)); produceError != nil {
		return produceError
	}
	if copyError := copier.Copy(captured.String()); copyError != nil {
		return fmt.Errorf(errorCopyFormat, copyError)
	}
	return nil
}

// resolveDirectory converts an input path to absolute form and checks that it is an existing directory.
func resolveDirectory(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	info, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if errors.Is(fileStatusError, os.ErrNotExist) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath}, nil
}
