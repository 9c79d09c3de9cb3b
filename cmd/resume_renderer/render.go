package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/export"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/render/templates"
	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume file to HTML or PDF",
	Long:  "Reads a structured resume JSON file, validates it, and renders it with the selected template to an HTML preview or a PDF document.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderTemplate   string
	renderFormat     string
	renderEngine     string
	renderExclude    []string
	renderConfigFile string
	renderCheck      bool
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (defaults to stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (default \"ats\")")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "pdf", "Output format: html or pdf")
	renderCmd.Flags().StringVar(&renderEngine, "engine", "", "PDF engine: pdf or chrome (default \"pdf\")")
	renderCmd.Flags().StringSliceVar(&renderExclude, "exclude", nil, "Section ids to exclude (comma-separated)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().BoolVar(&renderCheck, "check", false, "Verify both render surfaces carry the same sections")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed render information")

	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	data, err := loadResumeFile(renderInputFile)
	if err != nil {
		return err
	}

	policy, err := resolvePolicy(renderExclude)
	if err != nil {
		return err
	}
	data = policy.Apply(data)

	tmpl, err := templates.DefaultRegistry().Lookup(cfg.Template)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if renderVerbose {
		printer.PrintTemplateInfo(tmpl)
		printer.PrintSectionSelection(policy.Sections())
	}

	ctx := context.Background()

	if renderCheck {
		report, err := export.CheckParity(ctx, data, tmpl)
		if err != nil {
			return fmt.Errorf("parity check failed: %w", err)
		}
		printer.PrintParityReport(report)
		if !report.Equal {
			return fmt.Errorf("render surfaces disagree for template %s", tmpl.ID())
		}
	}

	var output []byte
	switch renderFormat {
	case "html":
		html, err := tmpl.RenderScreen(data)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		output = []byte(html)
	case "pdf":
		engine, err := export.ByName(cfg.Engine, cfg.ChromePath)
		if err != nil {
			return err
		}
		output, err = engine.Export(ctx, data, tmpl)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: must be html or pdf", renderFormat)
	}

	if renderVerbose {
		doc, err := tmpl.RenderPrint(data)
		if err == nil {
			printer.PrintRenderSummary(tmpl.ID(), doc.Sections(), len(output))
		}
	}

	return writeOutput(renderOutputFile, output)
}

// resolveConfig merges config file values and flags, flags winning.
func resolveConfig() (config.Config, error) {
	merged := config.Config{
		Template:   renderTemplate,
		Engine:     renderEngine,
		ChromePath: os.Getenv("CHROME_PATH"),
	}

	if renderConfigFile != "" {
		fileCfg, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}

	merged = merged.MergeWithDefaults(config.Config{Template: "ats", Engine: "pdf"})
	return merged, nil
}

// loadResumeFile reads, schema-validates, and decodes a resume JSON file.
func loadResumeFile(path string) (*types.ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if err := schemas.ValidateResumePayload(raw); err != nil {
		return nil, err
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("resume validation failed: %w", err)
	}

	return &data, nil
}

// resolvePolicy unchecks the excluded sections. Excluding a required section
// is an error; unknown ids are rejected to catch typos.
func resolvePolicy(exclude []string) (*sections.Policy, error) {
	policy := sections.Default()
	known := map[string]bool{}
	for _, section := range policy.Sections() {
		known[section.ID] = true
	}

	for _, id := range exclude {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if id == sections.IDPersonalInfo {
			return nil, fmt.Errorf("section %q is required and cannot be excluded", id)
		}
		if !known[id] {
			return nil, fmt.Errorf("unknown section %q", id)
		}
		if policy.Checked(id) {
			policy.Toggle(id)
		}
	}
	return policy, nil
}

func writeOutput(path string, output []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(path, output, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
