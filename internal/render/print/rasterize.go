package print

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// A4 dimensions in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0

	bulletIndentMM = 5.0
	bulletGlyph    = "•"
)

// fixedTimestamp pins the PDF creation and modification dates so that
// output never varies with the wall clock. The page content streams are
// then fully determined by the document; only the order in which the PDF
// writer emits its font dictionary objects may differ between runs.
var fixedTimestamp = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Rasterize renders a document to PDF bytes. Layout is a single mechanical
// walk over the primitive tree: boxes resolve to x-offsets and widths, text
// runs to MultiCell calls. Overflowing column flow breaks onto a new page
// automatically.
func Rasterize(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(fixedTimestamp)
	pdf.SetModificationDate(fixedTimestamp)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i := range doc.Pages {
		page := &doc.Pages[i]
		margin := page.Margin
		if margin <= 0 {
			margin = 15
		}
		pdf.SetMargins(margin, margin, margin)
		pdf.SetAutoPageBreak(true, margin)
		pdf.AddPage()

		r := &rasterizer{pdf: pdf, tr: tr, margin: margin}
		y := margin
		for j := range page.Boxes {
			y = r.renderBox(&page.Boxes[j], margin, y, pageWidthMM-2*margin)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

type rasterizer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	margin float64
}

// renderBox draws one box at the given geometry and returns the y coordinate
// below the rendered content.
func (r *rasterizer) renderBox(b *Box, x, y, w float64) float64 {
	if b.WidthPct > 0 {
		w = w * b.WidthPct / 100
	}

	if b.Fill != nil {
		h := b.FillHeight
		if h <= 0 {
			h = pageHeightMM - r.margin - y
		}
		r.pdf.SetFillColor(int(b.Fill.R), int(b.Fill.G), int(b.Fill.B))
		r.pdf.Rect(x, y, w, h, "F")
	}

	cx, cy, cw := x+b.Pad, y+b.Pad, w-2*b.Pad

	for i := range b.Texts {
		cy = r.renderText(&b.Texts[i], cx, cy, cw)
	}

	switch b.Dir {
	case Row:
		childX := cx
		maxY := cy
		for i := range b.Children {
			child := &b.Children[i]
			childW := cw
			if child.WidthPct > 0 {
				childW = cw * child.WidthPct / 100
			}
			endY := r.renderBox(child, childX, cy, cw)
			if endY > maxY {
				maxY = endY
			}
			childX += childW
		}
		cy = maxY
	default:
		for i := range b.Children {
			cy = r.renderBox(&b.Children[i], cx, cy, cw)
		}
	}

	return cy + b.Pad
}

// renderText draws one text run and returns the y coordinate below it.
func (r *rasterizer) renderText(t *Text, x, y, w float64) float64 {
	s := t.Style
	r.pdf.SetFont(fontFamily(s.Font), fontStyle(s), s.SizePt)
	r.pdf.SetTextColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))

	lineHeight := s.LineHeight
	if lineHeight <= 0 {
		lineHeight = s.SizePt * 0.45
	}
	align := s.Align
	if align == "" {
		align = "L"
	}

	if t.Bullet {
		r.pdf.SetXY(x, y)
		r.pdf.CellFormat(bulletIndentMM, lineHeight, r.tr(bulletGlyph), "", 0, "L", false, 0, "")
		r.pdf.SetXY(x+bulletIndentMM, y)
		r.pdf.MultiCell(w-bulletIndentMM, lineHeight, r.tr(t.Content), "", align, false)
	} else {
		r.pdf.SetXY(x, y)
		r.pdf.MultiCell(w, lineHeight, r.tr(t.Content), "", align, false)
	}

	return r.pdf.GetY() + s.SpaceAfter
}

// fontFamily maps to an fpdf core font family, defaulting to Helvetica.
func fontFamily(name string) string {
	if name == "" {
		return "Helvetica"
	}
	return name
}

// fontStyle builds the fpdf style string from explicit flags.
func fontStyle(s Style) string {
	style := ""
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	return style
}
