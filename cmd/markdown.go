package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// runMarkdown prints a Markdown help page for the tool. The output can be
// piped to a file for later use.
func runMarkdown(cmd *cobra.Command) error {
	return doc.GenMarkdown(cmd.Root(), cmd.OutOrStdout())
}
