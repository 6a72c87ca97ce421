// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the external notebook-to-Markdown converter and
// locates the files it leaves next to the notebook.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

const (
	// markdownExt is the extension nbconvert gives its Markdown output.
	markdownExt = ".md"
	// mediaSuffix is appended to the notebook stem for the extracted media directory.
	mediaSuffix = "_files"
)

// Converter transforms a notebook into Markdown on disk. The real
// implementation shells out to nbconvert; tests substitute a fake.
type Converter interface {
	// Convert renders the notebook at notebookPath and returns where the
	// Markdown and media ended up. A nil error guarantees MarkdownPath exists.
	Convert(notebookPath string) (types.ConversionResult, error)
}

// BaseName returns the notebook file name without its extension.
func BaseName(notebookPath string) string {
	base := filepath.Base(notebookPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MarkdownPath returns <dir>/<stem>.md for the notebook.
func MarkdownPath(notebookPath string) string {
	return filepath.Join(filepath.Dir(notebookPath), BaseName(notebookPath)+markdownExt)
}

// MediaDirPath returns <dir>/<stem>_files for the notebook, whether or not
// it exists.
func MediaDirPath(notebookPath string) string {
	return filepath.Join(filepath.Dir(notebookPath), BaseName(notebookPath)+mediaSuffix)
}

// Locate builds the ConversionResult for a notebook that has already been
// converted. It fails when the Markdown output is missing; MediaDir is set
// only if the media directory exists.
func Locate(notebookPath string) (types.ConversionResult, error) {
	res := types.ConversionResult{
		BaseName:     BaseName(notebookPath),
		MarkdownPath: MarkdownPath(notebookPath),
	}

	if _, err := os.Stat(res.MarkdownPath); err != nil {
		return types.ConversionResult{}, fmt.Errorf("converter output %s: %w", res.MarkdownPath, err)
	}

	media := MediaDirPath(notebookPath)
	if info, err := os.Stat(media); err == nil && info.IsDir() {
		res.MediaDir = media
	}
	return res, nil
}
