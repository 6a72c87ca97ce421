// Package main is the entry point for the nb2hugo CLI, which turns a Jupyter
// notebook into a Hugo leaf bundle under content/posts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tbb3kernel/tbb3kernel.github.io/internal/bundle"
	"github.com/tbb3kernel/tbb3kernel.github.io/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nb2hugo CLI.
var rootCmd = &cobra.Command{
	Use:   "nb2hugo",
	Short: "Convert Jupyter notebooks into Hugo content bundles",
	Long: `nb2hugo converts a Jupyter notebook into a Hugo leaf bundle. It runs
jupyter nbconvert to produce Markdown, lifts the first H1 into the front
matter title, and moves index.md plus the extracted images into
content/posts/<notebook-name>/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nb2hugo.yaml or ~/.config/nb2hugo/config.yaml)")
}

func initConfig() {
	viper.SetDefault("content_dir", bundle.DefaultContentDir)
	viper.SetDefault("converter.command", "jupyter")
	viper.SetDefault("converter.args", []string{"nbconvert", "--to", "markdown"})
	viper.SetDefault("front_matter.post_type", bundle.DefaultPostType)
	viper.SetDefault("front_matter.draft", false)
	viper.SetDefault("summary.mode", string(types.SummaryPlaceholder))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nb2hugo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nb2hugo"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged defaults and config file into a SiteConfig.
func loadConfig() (types.SiteConfig, error) {
	var cfg types.SiteConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.SiteConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.Summary.Mode {
	case types.SummaryPlaceholder, types.SummaryFirstParagraph:
	default:
		return types.SiteConfig{}, fmt.Errorf("unsupported summary mode %q: use %s or %s",
			cfg.Summary.Mode, types.SummaryPlaceholder, types.SummaryFirstParagraph)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
