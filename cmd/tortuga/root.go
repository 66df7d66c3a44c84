package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tortuga",
	Short: "Tortuga compiles node graphs into animated turtle drawings",
	Long:  `Tortuga takes a directed graph of typed nodes (start, move, rotate, pen, loop), compiles it into command sequences, and replays them as drawing actors.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
