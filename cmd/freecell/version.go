package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version of the freecell binary.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the freecell version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("freecell", Version)
	},
}
