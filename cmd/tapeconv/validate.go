package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lviana15/tapeconv/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a table parses cleanly",
	Long: `Parses the header and every transition line of a table and reports the
first error with its line number. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
