// Package print provides the primitive node model for the print surface and
// its rasterization to PDF bytes. Print output must be position-deterministic,
// so documents are composed from pages, nested fixed-geometry boxes, and text
// runs with explicit style declarations — no stylesheet cascade and no
// runtime-computed layout. Each print template re-declares its full style
// table; nothing here depends on shared theme state.
package print

// RGB is an explicit color declaration.
type RGB struct {
	R, G, B uint8
}

// Direction controls how a box lays out its children.
type Direction int

const (
	// Column stacks children vertically. The zero value, so boxes flow
	// top-to-bottom unless declared otherwise.
	Column Direction = iota
	// Row places children side by side, widths resolved from WidthPct.
	Row
)

// Style is the complete, explicit style of one text run. SizePt is in points;
// LineHeight and SpaceAfter are in millimeters. A zero LineHeight derives a
// default from the font size at rasterization time.
type Style struct {
	Font       string
	SizePt     float64
	Bold       bool
	Italic     bool
	Color      RGB
	LineHeight float64
	Align      string // "L", "C", "R", "J"; empty means "L"
	SpaceAfter float64
}

// Text is one styled text run. Bullet runs get a marker glyph and a hanging
// indent when rasterized.
type Text struct {
	Content string
	Style   Style
	Bullet  bool
}

// Box is a nested fixed-geometry container. WidthPct resolves against the
// parent's content width (0 means full width). A non-nil Fill paints the box
// background over FillHeight millimeters, or down to the bottom margin when
// FillHeight is zero — sidebar columns declare their geometry explicitly
// rather than depending on measured content.
type Box struct {
	Section    string // canonical section id, empty for structural boxes
	Dir        Direction
	WidthPct   float64
	Fill       *RGB
	FillHeight float64
	Pad        float64
	Texts      []Text
	Children   []Box
}

// Page is one fixed-size A4 page with a uniform margin in millimeters.
type Page struct {
	Margin float64
	Boxes  []Box
}

// Document is a complete print document description, ready for direct
// rasterization with no further layout pass downstream.
type Document struct {
	Title string
	Pages []Page
}

// Sections returns the canonical section ids present in the document, in
// emission order, deduplicated. Used for surface-parity checks.
func (d *Document) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	var walk func(boxes []Box)
	walk = func(boxes []Box) {
		for i := range boxes {
			if id := boxes[i].Section; id != "" && !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
			walk(boxes[i].Children)
		}
	}
	for i := range d.Pages {
		walk(d.Pages[i].Boxes)
	}
	return out
}
