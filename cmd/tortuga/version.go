package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tortugraph/tortuga"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tortuga",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tortuga version %s\n", strings.TrimSpace(tortuga.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
