package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/types"
)

// A4 in inches, so the browser lays the page out exactly like the screen CSS.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// ChromeEngine prints the screen surface through headless Chrome. Output is
// visually richer than the pdf engine but varies with the browser build, and
// it requires a local Chrome or Chromium binary.
type ChromeEngine struct {
	// ChromePath overrides binary discovery. Empty means let chromedp find
	// the browser on PATH.
	ChromePath string

	// Timeout bounds a single print. Zero means 30 seconds.
	Timeout time.Duration
}

// NewChromeEngine creates a Chrome-backed engine. chromePath may be empty.
func NewChromeEngine(chromePath string) *ChromeEngine {
	return &ChromeEngine{ChromePath: chromePath}
}

func (e *ChromeEngine) Name() string { return "chrome" }

func (e *ChromeEngine) Export(ctx context.Context, data *types.ResumeData, tmpl render.Template) ([]byte, error) {
	html, err := tmpl.RenderScreen(data)
	if err != nil {
		return nil, fmt.Errorf("screen render failed: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "resume-export-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write temp html: %w", err)
	}

	timeout := e.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var pdf []byte
	err = chromedp.Run(taskCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print failed: %w", err)
	}
	return pdf, nil
}
