package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tapeconv",
	Short: "Convert Turing machine tables between tape conventions",
	Long: `Tapeconv rewrites a textual Turing-machine transition table between the
doubly-infinite tape model and the Sipser model bounded by an origin marker,
synthesizing the control states needed to simulate the other convention.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Optional YAML file overriding reserved symbols and prefixes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
