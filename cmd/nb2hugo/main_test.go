package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

// withConfigFile points the root --config flag at a file holding content
// and reloads viper.
func withConfigFile(t *testing.T, content string) {
	t.Helper()
	path := ""
	if content != "" {
		path = filepath.Join(t.TempDir(), "nb2hugo.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	viper.Reset()
	require.NoError(t, rootCmd.PersistentFlags().Set("config", path))
	t.Cleanup(func() {
		viper.Reset()
		_ = rootCmd.PersistentFlags().Set("config", "")
	})
	initConfig()
}

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	withConfigFile(t, "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "content/posts", cfg.ContentDir)
	assert.Equal(t, "jupyter", cfg.Converter.Command)
	assert.Equal(t, []string{"nbconvert", "--to", "markdown"}, cfg.Converter.Args)
	assert.Equal(t, "Jupyter Notebook", cfg.FrontMatter.PostType)
	assert.False(t, cfg.FrontMatter.Draft)
	assert.Equal(t, types.SummaryPlaceholder, cfg.Summary.Mode)
}

func TestLoadConfigFile(t *testing.T) {
	withConfigFile(t, `content_dir: site/content/notebooks
converter:
  command: /opt/conda/bin/jupyter
front_matter:
  draft: true
summary:
  mode: first-paragraph
`)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "site/content/notebooks", cfg.ContentDir)
	assert.Equal(t, "/opt/conda/bin/jupyter", cfg.Converter.Command)
	assert.Equal(t, []string{"nbconvert", "--to", "markdown"}, cfg.Converter.Args)
	assert.True(t, cfg.FrontMatter.Draft)
	assert.Equal(t, types.SummaryFirstParagraph, cfg.Summary.Mode)
}

func TestLoadConfigRejectsUnknownSummaryMode(t *testing.T) {
	withConfigFile(t, "summary:\n  mode: llm\n")

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported summary mode "llm"`)
}
