package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbb3kernel/tbb3kernel.github.io/internal/bundle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bundle-dir>",
	Short: "Print the front matter of an existing bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, body, err := bundle.ReadIndex(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "title:     %s\n", fm.Title)
		fmt.Fprintf(out, "date:      %s\n", fm.Date.Format("2006-01-02"))
		fmt.Fprintf(out, "draft:     %t\n", fm.Draft)
		fmt.Fprintf(out, "post_type: %s\n", fm.PostType)
		fmt.Fprintf(out, "summary:   %s\n", fm.Summary)
		fmt.Fprintf(out, "tags:      [%s]\n", strings.Join(fm.Tags, ", "))
		fmt.Fprintf(out, "body:      %d bytes\n", len(body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
