package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/types"
)

// ParityReport compares the section composition of the two surfaces for one
// template and snapshot.
type ParityReport struct {
	TemplateID      string   `json:"template_id"`
	ScreenSections  []string `json:"screen_sections"`
	PrintSections   []string `json:"print_sections"`
	Equal           bool     `json:"equal"`
	MissingInPrint  []string `json:"missing_in_print,omitempty"`
	MissingInScreen []string `json:"missing_in_screen,omitempty"`
}

// CheckParity renders both surfaces concurrently and reports whether they
// carry the same sections in the same order.
func CheckParity(ctx context.Context, data *types.ResumeData, tmpl render.Template) (*ParityReport, error) {
	var (
		screenSections []string
		printSections  []string
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		html, err := tmpl.RenderScreen(data)
		if err != nil {
			return fmt.Errorf("screen render failed: %w", err)
		}
		screenSections, err = ScreenSections(html)
		return err
	})
	g.Go(func() error {
		doc, err := tmpl.RenderPrint(data)
		if err != nil {
			return fmt.Errorf("print render failed: %w", err)
		}
		printSections = doc.Sections()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ParityReport{
		TemplateID:     tmpl.ID(),
		ScreenSections: screenSections,
		PrintSections:  printSections,
		Equal:          equalStrings(screenSections, printSections),
	}
	if !report.Equal {
		report.MissingInPrint = difference(screenSections, printSections)
		report.MissingInScreen = difference(printSections, screenSections)
	}
	return report, nil
}

// ScreenSections extracts the ordered, deduplicated section IDs from rendered
// screen HTML.
func ScreenSections(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse screen html: %w", err)
	}
	var (
		ids  []string
		seen = map[string]bool{}
	)
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("data-section")
		if !ok || id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})
	return ids, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func difference(a, b []string) []string {
	in := map[string]bool{}
	for _, s := range b {
		in[s] = true
	}
	var out []string
	for _, s := range a {
		if !in[s] {
			out = append(out, s)
		}
	}
	return out
}
