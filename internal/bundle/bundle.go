// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bundle assembles Hugo leaf bundles: a directory holding index.md
// and the notebook's media directory.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

const (
	// DefaultContentDir is where bundles go relative to the site root.
	DefaultContentDir = "content/posts"
	// DefaultPostType is the post_type tag the site theme renders as a badge.
	DefaultPostType = "Jupyter Notebook"

	indexFile = "index.md"
)

// Config controls where and how bundles are written.
type Config struct {
	// ContentDir is the root directory for bundles. Empty means DefaultContentDir.
	ContentDir string

	// PostType is written as post_type. Empty means DefaultPostType.
	PostType string

	// Draft is written as the draft flag.
	Draft bool

	// Now supplies the bundle date. Nil means time.Now.
	Now func() time.Time
}

func (c Config) contentDir() string {
	if c.ContentDir == "" {
		return DefaultContentDir
	}
	return c.ContentDir
}

func (c Config) postType() string {
	if c.PostType == "" {
		return DefaultPostType
	}
	return c.PostType
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Dir returns the bundle directory for a notebook with the given base name.
func (c Config) Dir(baseName string) string {
	return filepath.Join(c.contentDir(), baseName)
}

// Assemble writes the bundle for res and pc and returns its directory.
// Steps run in order: create the directory, write index.md, move the media
// directory (replacing any previous copy) and remove the intermediate
// Markdown file. A failure part way leaves whatever was already written.
func Assemble(cfg Config, res types.ConversionResult, pc types.ProcessedContent, w io.Writer) (string, error) {
	dest := cfg.Dir(res.BaseName)

	_, statErr := os.Stat(dest)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", fmt.Errorf("creating bundle directory %s: %w", dest, err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintf(w, "created: %s\n", dest)
	}

	header, err := EncodeFrontMatter(types.FrontMatter{
		Title:    pc.Title,
		Date:     cfg.now(),
		Draft:    cfg.Draft,
		PostType: cfg.postType(),
		Summary:  pc.Summary,
		Tags:     []string{},
	})
	if err != nil {
		return "", err
	}

	indexPath := filepath.Join(dest, indexFile)
	if err := os.WriteFile(indexPath, append(header, pc.Body...), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", indexPath, err)
	}
	fmt.Fprintf(w, "wrote: %s\n", indexPath)

	if res.HasMedia() {
		target := filepath.Join(dest, filepath.Base(res.MediaDir))
		if err := replaceDir(res.MediaDir, target); err != nil {
			return "", fmt.Errorf("moving media %s: %w", res.MediaDir, err)
		}
		fmt.Fprintf(w, "moved: %s -> %s\n", res.MediaDir, target)
	}

	if err := os.Remove(res.MarkdownPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not remove %s: %v\n", res.MarkdownPath, err)
	}

	return dest, nil
}
