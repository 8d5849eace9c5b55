package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/statement-parser/internal/statement"
	"github.com/ginjaninja78/statement-parser/internal/writer"
)

// vendorsCmd lists the statement formats and export formats this build knows.
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported statement formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Statement formats:")
		for _, v := range statement.Vendors() {
			fmt.Fprintf(out, "  %s\n", v)
		}
		fmt.Fprintln(out, "Export formats:")
		for _, f := range writer.Formats() {
			fmt.Fprintf(out, "  %s\n", f)
		}
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}
