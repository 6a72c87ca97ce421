// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform turns the converter's raw Markdown into bundle content:
// it lifts the first H1 out as the page title and picks a summary.
package transform

import (
	"fmt"
	"os"
	"strings"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

const (
	// DefaultTitle is used when the Markdown has no H1 line.
	DefaultTitle = "Untitled Notebook"
	// DefaultSummary is the summary placeholder.
	DefaultSummary = "Generated from Jupyter Notebook"

	titlePrefix = "# "
	titleTrim   = "# "
)

// Options controls optional parts of the transform.
type Options struct {
	// Summary selects the summary source; the zero value means placeholder.
	Summary types.SummaryMode
}

// Process reads the Markdown file at mdPath and transforms it.
func Process(mdPath string, opts Options) (types.ProcessedContent, error) {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return types.ProcessedContent{}, fmt.Errorf("reading converter output: %w", err)
	}
	return Transform(string(data), opts), nil
}

// Transform extracts the title from raw and returns the remaining body.
// Only the first line starting with "# " is treated as the title; every
// other line is kept verbatim, line endings included.
func Transform(raw string, opts Options) types.ProcessedContent {
	title, body := extractTitle(raw)

	summary := DefaultSummary
	if opts.Summary == types.SummaryFirstParagraph {
		if p := firstParagraph([]byte(body)); p != "" {
			summary = p
		}
	}

	return types.ProcessedContent{
		Title:   title,
		Summary: summary,
		Body:    body,
	}
}

// extractTitle splits raw into the first H1 title and the body without that
// line. Without an H1 it returns DefaultTitle and raw unchanged.
func extractTitle(raw string) (title, body string) {
	lines := strings.SplitAfter(raw, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, titlePrefix) {
			continue
		}
		title = strings.TrimSpace(strings.Trim(line, titleTrim))
		return title, strings.Join(lines[:i], "") + strings.Join(lines[i+1:], "")
	}
	return DefaultTitle, raw
}
