package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planform/planform"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of planform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("planform version %s\n", strings.TrimSpace(planform.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
