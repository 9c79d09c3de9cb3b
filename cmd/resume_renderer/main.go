// Package main provides the entry point for the resume renderer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_renderer",
	Short: "Resume rendering engine",
	Long:  "Resume renderer turns structured resume data into interactive HTML previews and print-faithful PDF documents across multiple visual templates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
