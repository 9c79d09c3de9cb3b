package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/server"
)

var (
	servePort     int
	serveTemplate string
	serveEngine   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for storing resumes, previewing them, and exporting PDFs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTemplate, "template", "ats", "Default template id")
	serveCmd.Flags().StringVar(&serveEngine, "engine", "pdf", "Default export engine (pdf or chrome)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Port:            servePort,
		DatabaseURL:     databaseURL,
		DefaultTemplate: serveTemplate,
		DefaultEngine:   serveEngine,
		ChromePath:      os.Getenv("CHROME_PATH"),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
