// Package main is the entry point for the osr-combat demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "osr",
	Short: "OSR combat engine demo CLI",
	Long:  `osr drives the turn-based combat engine through a scripted encounter and prints the resulting event stream.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
