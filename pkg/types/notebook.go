// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionResult locates the files the external converter left next to
// the source notebook.
type ConversionResult struct {
	// BaseName is the notebook file name without its extension (e.g. "analysis").
	BaseName string `json:"base_name" yaml:"base_name"`

	// MarkdownPath is the intermediate <stem>.md written by the converter.
	MarkdownPath string `json:"markdown_path" yaml:"markdown_path"`

	// MediaDir is the <stem>_files directory of extracted images, or empty
	// when the converter produced none.
	MediaDir string `json:"media_dir,omitempty" yaml:"media_dir,omitempty"`
}

// HasMedia reports whether the converter extracted a media directory.
func (r ConversionResult) HasMedia() bool {
	return r.MediaDir != ""
}

// ProcessedContent is the converter's Markdown after the title pass.
// Body never contains the line the title was taken from.
type ProcessedContent struct {
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	Body    string `json:"body" yaml:"body"`
}

// FrontMatter is the metadata header of a bundle's index.md.
type FrontMatter struct {
	Title    string    `json:"title" yaml:"title"`
	Date     time.Time `json:"date" yaml:"date"`
	Draft    bool      `json:"draft" yaml:"draft"`
	PostType string    `json:"post_type" yaml:"post_type"`
	Summary  string    `json:"summary" yaml:"summary"`
	Tags     []string  `json:"tags" yaml:"tags"`
}
