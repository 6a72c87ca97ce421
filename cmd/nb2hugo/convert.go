package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tbb3kernel/tbb3kernel.github.io/internal/publish"
)

var convertCmd = &cobra.Command{
	Use:   "convert <notebook.ipynb>",
	Short: "Convert a notebook into a Hugo leaf bundle",
	Long: `Convert runs jupyter nbconvert on the notebook, takes the first "# "
heading as the post title, and writes content/posts/<name>/index.md with YAML
front matter. The <name>_files image directory is moved into the bundle,
replacing any earlier copy, and the intermediate <name>.md is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = publish.New(cfg, os.Stdout).Run(args[0])
	return err
}
