package templates

import (
	"github.com/jonathan/resume-renderer/internal/format"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

// ATS is a single-column, typography-first template aimed at applicant
// tracking systems: no photo, no color blocks, strict top-to-bottom flow.
// Presentation choices: short month/year dates, address joined as city+state.
type ATS struct{}

// NewATS creates the ats template.
func NewATS() *ATS { return &ATS{} }

func (t *ATS) ID() string   { return "ats" }
func (t *ATS) Name() string { return "ATS Single Column" }

func (t *ATS) Capabilities() render.Capabilities {
	return render.Capabilities{Photo: false, Columns: 1, Accent: "#1a1a1a"}
}

func (t *ATS) options() viewOptions {
	return viewOptions{
		date:         func(d *string) string { return format.MonthYear(d, format.StyleShort) },
		addressParts: []format.AddressPart{format.PartCity, format.PartState},
	}
}

func (t *ATS) RenderScreen(data *types.ResumeData) (string, error) {
	return renderScreen(t.ID(), "ats.gohtml", buildView(data, t.options()))
}

// atsStyles is the template's full print style table. Times throughout, black
// on white, rules carried by spacing rather than fills.
var atsStyles = printStyles{
	Name:     print.Style{Font: "Times", SizePt: 20, Bold: true, SpaceAfter: 1.5},
	Contact:  print.Style{Font: "Times", SizePt: 9, Color: print.RGB{R: 68, G: 68, B: 68}, SpaceAfter: 2},
	Summary:  print.Style{Font: "Times", SizePt: 10, Align: "J", LineHeight: 4.6, SpaceAfter: 2},
	Heading:  print.Style{Font: "Times", SizePt: 11, Bold: true, SpaceAfter: 2.5},
	Title:    print.Style{Font: "Times", SizePt: 10.5, Bold: true},
	Subtitle: print.Style{Font: "Times", SizePt: 9.5, Italic: true, Color: print.RGB{R: 60, G: 60, B: 60}},
	Meta:     print.Style{Font: "Times", SizePt: 8.5, Color: print.RGB{R: 85, G: 85, B: 85}},
	Body:     print.Style{Font: "Times", SizePt: 9.5, Align: "J", LineHeight: 4.4},
	Tag:      print.Style{Font: "Times", SizePt: 9.5},
	Notice:   print.Style{Font: "Times", SizePt: 10, Italic: true, Color: print.RGB{R: 100, G: 100, B: 100}},
}

func (t *ATS) RenderPrint(data *types.ResumeData) (*print.Document, error) {
	v := buildView(data, t.options())
	st := atsStyles

	var boxes []print.Box
	if p := v.Profile; p != nil {
		header := print.Box{Section: sections.IDPersonalInfo}
		if p.FullName != "" {
			header.Texts = append(header.Texts, print.Text{Content: p.FullName, Style: st.Name})
		}
		if contact := contactLine(p, "  •  "); contact != "" {
			header.Texts = append(header.Texts, print.Text{Content: contact, Style: st.Contact})
		}
		if p.Summary != "" {
			header.Texts = append(header.Texts, print.Text{Content: p.Summary, Style: st.Summary})
		}
		boxes = append(boxes, header)
	} else {
		boxes = append(boxes, noProfileNotice(st))
	}

	for i := range v.Sections {
		sec := printSection(&v.Sections[i], st)
		sec.Pad = 0
		boxes = append(boxes, sec)
	}

	return &print.Document{
		Title: v.Title,
		Pages: []print.Page{{Margin: 16, Boxes: boxes}},
	}, nil
}
