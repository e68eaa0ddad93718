package main

// ABOUTME: CLI entry point wiring the kara root command
// ABOUTME: Exits non-zero on any command error

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kara",
	Short: "Inspect classpath-style layouts of type definitions",
	Long: "kara discovers type definitions under a namespace prefix across " +
		"directory trees and zip archives, the same layout the library scans at runtime.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
