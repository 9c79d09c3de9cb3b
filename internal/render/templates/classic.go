package templates

import (
	"github.com/jonathan/resume-renderer/internal/format"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Classic is a Europass-style template: a full-width colored banner carries
// the identity block, sections follow in a single column under colored
// heading bars, and language skills keep all four proficiency dimensions.
// Presentation choices: long month/year dates, address joined as
// city+state+country.
type Classic struct{}

// NewClassic creates the classic template.
func NewClassic() *Classic { return &Classic{} }

func (t *Classic) ID() string   { return "classic" }
func (t *Classic) Name() string { return "Classic Banner" }

func (t *Classic) Capabilities() render.Capabilities {
	return render.Capabilities{Photo: false, Columns: 1, Accent: "#1a5fa8"}
}

func (t *Classic) options() viewOptions {
	return viewOptions{
		date:         func(d *string) string { return format.MonthYear(d, format.StyleLong) },
		addressParts: []format.AddressPart{format.PartCity, format.PartState, format.PartCountry},
	}
}

func (t *Classic) RenderScreen(data *types.ResumeData) (string, error) {
	return renderScreen(t.ID(), "classic.gohtml", buildView(data, t.options()))
}

// classicStyles is the template's full print style table. Helvetica with the
// banner blue as the accent throughout.
var classicStyles = printStyles{
	Name:     print.Style{Font: "Helvetica", SizePt: 18, Bold: true, Color: print.RGB{R: 255, G: 255, B: 255}, SpaceAfter: 1.5},
	Contact:  print.Style{Font: "Helvetica", SizePt: 8.5, Color: print.RGB{R: 214, G: 228, B: 245}, SpaceAfter: 1},
	Summary:  print.Style{Font: "Helvetica", SizePt: 9.5, Align: "J", LineHeight: 4.4, Color: print.RGB{R: 62, G: 76, B: 89}, SpaceAfter: 2},
	Heading:  print.Style{Font: "Helvetica", SizePt: 10.5, Bold: true, Color: print.RGB{R: 26, G: 95, B: 168}, SpaceAfter: 2.5},
	Title:    print.Style{Font: "Helvetica", SizePt: 10, Bold: true, Color: print.RGB{R: 31, G: 41, B: 51}},
	Subtitle: print.Style{Font: "Helvetica", SizePt: 9.5, Italic: true, Color: print.RGB{R: 62, G: 76, B: 89}},
	Meta:     print.Style{Font: "Helvetica", SizePt: 8.5, Color: print.RGB{R: 98, G: 125, B: 152}},
	Body:     print.Style{Font: "Helvetica", SizePt: 9, Align: "J", LineHeight: 4.3, Color: print.RGB{R: 31, G: 41, B: 51}},
	Tag:      print.Style{Font: "Helvetica", SizePt: 9, Color: print.RGB{R: 62, G: 76, B: 89}},
	Notice:   print.Style{Font: "Helvetica", SizePt: 10, Italic: true, Color: print.RGB{R: 98, G: 125, B: 152}},
}

var classicBannerFill = print.RGB{R: 26, G: 95, B: 168}

func (t *Classic) RenderPrint(data *types.ResumeData) (*print.Document, error) {
	v := buildView(data, t.options())
	st := classicStyles

	var boxes []print.Box
	if p := v.Profile; p != nil {
		banner := print.Box{
			Section:    sections.IDPersonalInfo,
			Fill:       &classicBannerFill,
			FillHeight: 32,
			Pad:        6,
		}
		if p.FullName != "" {
			banner.Texts = append(banner.Texts, print.Text{Content: p.FullName, Style: st.Name})
		}
		if contact := contactLine(p, " | "); contact != "" {
			banner.Texts = append(banner.Texts, print.Text{Content: contact, Style: st.Contact})
		}
		boxes = append(boxes, banner)
		if p.Summary != "" {
			boxes = append(boxes, print.Box{Texts: []print.Text{{Content: p.Summary, Style: st.Summary}}})
		}
	} else {
		boxes = append(boxes, noProfileNotice(st))
	}

	for i := range v.Sections {
		boxes = append(boxes, printSection(&v.Sections[i], st))
	}

	return &print.Document{
		Title: v.Title,
		Pages: []print.Page{{Margin: 14, Boxes: boxes}},
	}, nil
}
