package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lviana15/tapeconv"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tapeconv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tapeconv version %s\n", strings.TrimSpace(tapeconv.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
