// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-renderer/internal/export"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/sections"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTemplateInfo outputs a summary of the selected template.
func (p *Printer) PrintTemplateInfo(tmpl render.Template) {
	if tmpl == nil {
		return
	}

	caps := tmpl.Capabilities()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s (%s)\n", tmpl.Name(), tmpl.ID()))
	sb.WriteString(fmt.Sprintf("Columns:  %d\n", caps.Columns))
	sb.WriteString(fmt.Sprintf("Accent:   %s\n", caps.Accent))
	if caps.Photo {
		sb.WriteString("Photo:    supported")
	} else {
		sb.WriteString("Photo:    not rendered")
	}

	p.printBox("SELECTED TEMPLATE", sb.String())
}

// PrintSectionSelection outputs the current section composition with
// checked/unchecked indicators.
func (p *Printer) PrintSectionSelection(configs []sections.Config) {
	if len(configs) == 0 {
		return
	}

	var sb strings.Builder
	for i, config := range configs {
		mark := "✗"
		if config.Checked {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s", mark, config.Label))
		if config.Required {
			sb.WriteString(" (required)")
		}
		if i < len(configs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION SELECTION", sb.String())
}

// PrintRenderSummary outputs which sections made it into the rendered
// document, in document order.
func (p *Printer) PrintRenderSummary(templateID string, renderedSections []string, byteSize int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", templateID))
	sb.WriteString(fmt.Sprintf("Output:   %d bytes\n\n", byteSize))

	if len(renderedSections) == 0 {
		sb.WriteString("No sections rendered")
	} else {
		sb.WriteString("Sections:\n")
		count := min(len(renderedSections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, renderedSections[i]))
		}
		if len(renderedSections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(renderedSections)-maxItemsToShow))
		}
	}

	p.printBox("RENDER SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParityReport outputs the surface comparison result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintParityReport(report *export.ParityReport) {
	if report == nil {
		return
	}

	if report.Equal {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ SURFACES MATCH: "+report.TemplateID)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n\n", report.TemplateID))
	sb.WriteString(fmt.Sprintf("Screen: %s\n", strings.Join(report.ScreenSections, ", ")))
	sb.WriteString(fmt.Sprintf("Print:  %s\n", strings.Join(report.PrintSections, ", ")))

	if len(report.MissingInPrint) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠ Missing in print: %s", strings.Join(report.MissingInPrint, ", ")))
	}
	if len(report.MissingInScreen) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠ Missing in screen: %s", strings.Join(report.MissingInScreen, ", ")))
	}

	p.printBox("SURFACE MISMATCH", sb.String())
}
