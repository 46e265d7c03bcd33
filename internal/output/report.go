// Package output renders ptree results as plain text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tyemirov/ptree/internal/types"
)

const (
	headingRuleWidth = 50
	headingRuleRune  = "="

	bannerFormat               = "🎮 %s - Project Structure"
	statisticsHeading          = "📊 Project Statistics:"
	keyDirectoriesHeading      = "📁 Key Directories:"
	documentationHeading       = "📚 Documentation Files:"
	statisticsLineFormat       = "%s files: %d"
	statisticsTotalFormat      = "Total: %d"
	keyDirectoryLineFormat     = "%-23s - %s"
	documentationLineFormat    = "✓ %-35s - %s"
	closingReadyLine           = "✅ Project Ready!"
	closingStartHintLine       = "Start with: cat QUICKSTART.md"
	errorWriteReportFormat     = "writing report: %w"
	errorWriteStatisticsFormat = "writing statistics: %w"
)

// Report holds the sections printed by the report command.
// Nil Statistics or Catalog sections are omitted.
type Report struct {
	Title      string
	Tree       string
	Statistics *types.StatisticsReport
	Catalog    *types.Catalog
}

// lineWriter writes lines and keeps the first write error, so callers can
// check once at the end.
type lineWriter struct {
	writer io.Writer
	err    error
}

func (lines *lineWriter) println(text string) {
	if lines.err != nil {
		return
	}
	_, lines.err = io.WriteString(lines.writer, text+"\n")
}

func (lines *lineWriter) printf(format string, arguments ...any) {
	lines.println(fmt.Sprintf(format, arguments...))
}

func (lines *lineWriter) heading(title string, leadingBlankLine bool) {
	if leadingBlankLine {
		lines.println("")
	}
	lines.println(title)
	lines.println(strings.Repeat(headingRuleRune, headingRuleWidth))
}

func (lines *lineWriter) statistics(report types.StatisticsReport, leadingBlankLine bool) {
	lines.heading(statisticsHeading, leadingBlankLine)
	for _, category := range report.Categories {
		lines.printf(statisticsLineFormat, category.Label, category.Files)
	}
	lines.printf(statisticsTotalFormat, report.Total)
}

// WriteReport prints the banner, the tree, the optional statistics and
// catalog sections, and the closing lines.
func WriteReport(writer io.Writer, report Report) error {
	lines := &lineWriter{writer: writer}
	lines.heading(fmt.Sprintf(bannerFormat, report.Title), false)
	lines.println("")
	lines.println(report.Tree)

	if report.Statistics != nil {
		lines.statistics(*report.Statistics, true)
	}

	if report.Catalog != nil {
		lines.heading(keyDirectoriesHeading, true)
		for _, entry := range report.Catalog.KeyDirectories {
			lines.printf(keyDirectoryLineFormat, entry.Path, entry.Description)
		}
		lines.heading(documentationHeading, true)
		for _, entry := range report.Catalog.DocumentationFiles {
			lines.printf(documentationLineFormat, entry.Path, entry.Description)
		}
	}

	lines.println("")
	lines.println(closingReadyLine)
	lines.println(closingStartHintLine)

	if lines.err != nil {
		return fmt.Errorf(errorWriteReportFormat, lines.err)
	}
	return nil
}

// WriteStatistics prints the statistics section on its own.
func WriteStatistics(writer io.Writer, report types.StatisticsReport) error {
	lines := &lineWriter{writer: writer}
	lines.statistics(report, false)
	if lines.err != nil {
		return fmt.Errorf(errorWriteStatisticsFormat, lines.err)
	}
	return nil
}
