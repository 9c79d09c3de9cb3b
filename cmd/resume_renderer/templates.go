package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/render/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	for _, tmpl := range templates.DefaultRegistry().All() {
		caps := tmpl.Capabilities()
		photo := "no photo"
		if caps.Photo {
			photo = "photo"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s (%d column(s), %s, accent %s)\n",
			tmpl.ID(), tmpl.Name(), caps.Columns, photo, caps.Accent)
	}
	return nil
}
