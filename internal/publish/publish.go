// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish runs the notebook-to-bundle pipeline: convert, transform,
// assemble. Each stage runs to completion before the next starts and any
// error aborts the run without rollback.
package publish

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tbb3kernel/tbb3kernel.github.io/internal/bundle"
	"github.com/tbb3kernel/tbb3kernel.github.io/internal/convert"
	"github.com/tbb3kernel/tbb3kernel.github.io/internal/transform"
	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

// ErrNotFound is returned when the source notebook does not exist.
var ErrNotFound = errors.New("file not found")

// Pipeline holds the collaborators for one conversion.
type Pipeline struct {
	Converter convert.Converter
	Transform transform.Options
	Bundle    bundle.Config

	// Out receives progress lines. Nil discards them.
	Out io.Writer
}

// New builds a pipeline from the site configuration using the nbconvert
// converter.
func New(cfg types.SiteConfig, out io.Writer) *Pipeline {
	return &Pipeline{
		Converter: convert.NewNBConvert(cfg.Converter),
		Transform: transform.Options{Summary: cfg.Summary.Mode},
		Bundle: bundle.Config{
			ContentDir: cfg.ContentDir,
			PostType:   cfg.FrontMatter.PostType,
			Draft:      cfg.FrontMatter.Draft,
		},
		Out: out,
	}
}

// Run converts the notebook at notebookPath into a bundle and returns the
// bundle directory. The source is checked before anything is written.
func (p *Pipeline) Run(notebookPath string) (string, error) {
	w := p.Out
	if w == nil {
		w = io.Discard
	}

	info, err := os.Stat(notebookPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, notebookPath)
	}
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", notebookPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a notebook", notebookPath)
	}

	fmt.Fprintf(w, "converting: %s\n", notebookPath)
	res, err := p.Converter.Convert(notebookPath)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", notebookPath, err)
	}

	pc, err := transform.Process(res.MarkdownPath, p.Transform)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "title: %s\n", pc.Title)

	dest, err := bundle.Assemble(p.Bundle, res, pc, w)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(w, "\nConversion complete: %s. Run 'hugo server' to preview.\n", dest)
	return dest, nil
}
