package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lviana15/tapeconv/internal/cli"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a table to the opposite tape convention",
	Long: `Reads a transition table (default: example.in), converts it to the other
tape-boundary convention, and writes the result next to the input with the
.in extension replaced by .out. The input path must end in .in.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if err := cli.RunConvert(args, configPath, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Make 'convert' the default when no subcommand is given.
	rootCmd.Args = convertCmd.Args
	rootCmd.Run = convertCmd.Run
}
