package templates

import (
	"github.com/jonathan/resume-renderer/internal/format"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Modern is a two-column sidebar template: a dark 34% sidebar carrying the
// identity block, skills, and languages, with the remaining sections in the
// 66% main column. Presentation choices: year-only dates, address joined as
// city+country, userSkills flattened to one list (a lossy, template-local
// projection). The screen surface renders the profile photo when present,
// falling back to an initials badge; the print surface has no image
// primitive and always draws the initials badge.
type Modern struct{}

// NewModern creates the minimalist-modern template.
func NewModern() *Modern { return &Modern{} }

func (t *Modern) ID() string   { return "minimalist-modern" }
func (t *Modern) Name() string { return "Minimalist Modern" }

func (t *Modern) Capabilities() render.Capabilities {
	return render.Capabilities{Photo: true, Columns: 2, Accent: "#263238"}
}

func (t *Modern) options() viewOptions {
	return viewOptions{
		date:          format.Year,
		addressParts:  []format.AddressPart{format.PartCity, format.PartCountry},
		flattenSkills: true,
	}
}

// sidebarSection reports whether a section belongs in the sidebar column.
func sidebarSection(id string) bool {
	return id == sections.IDSkills || id == sections.IDLanguageSkills
}

// modernView splits the shared view into the two columns. Both surfaces
// consume the same split, so column assignment cannot drift between them.
type modernView struct {
	*View
	Sidebar []Section
	Main    []Section
}

func splitColumns(v *View) *modernView {
	mv := &modernView{View: v}
	for i := range v.Sections {
		if sidebarSection(v.Sections[i].ID) {
			mv.Sidebar = append(mv.Sidebar, v.Sections[i])
		} else {
			mv.Main = append(mv.Main, v.Sections[i])
		}
	}
	return mv
}

func (t *Modern) RenderScreen(data *types.ResumeData) (string, error) {
	return renderScreen(t.ID(), "minimalist-modern.gohtml", splitColumns(buildView(data, t.options())))
}

// modernStyles is the template's full print style table. Helvetica, a dark
// slate sidebar with light text, muted grays in the main column.
var modernStyles = printStyles{
	Name:     print.Style{Font: "Helvetica", SizePt: 14, Bold: true, Color: print.RGB{R: 236, G: 239, B: 241}, SpaceAfter: 2},
	Contact:  print.Style{Font: "Helvetica", SizePt: 8, Color: print.RGB{R: 207, G: 216, B: 220}, LineHeight: 4.2, SpaceAfter: 2},
	Summary:  print.Style{Font: "Helvetica", SizePt: 9.5, Color: print.RGB{R: 55, G: 71, B: 79}, LineHeight: 4.5, SpaceAfter: 3},
	Heading:  print.Style{Font: "Helvetica", SizePt: 10, Bold: true, Color: print.RGB{R: 38, G: 50, B: 56}, SpaceAfter: 2.5},
	Title:    print.Style{Font: "Helvetica", SizePt: 10, Bold: true, Color: print.RGB{R: 33, G: 33, B: 33}},
	Subtitle: print.Style{Font: "Helvetica", SizePt: 9, Color: print.RGB{R: 84, G: 110, B: 122}},
	Meta:     print.Style{Font: "Helvetica", SizePt: 8.5, Color: print.RGB{R: 120, G: 144, B: 156}},
	Body:     print.Style{Font: "Helvetica", SizePt: 9, LineHeight: 4.2, Color: print.RGB{R: 33, G: 33, B: 33}},
	Tag:      print.Style{Font: "Helvetica", SizePt: 8.5, Color: print.RGB{R: 236, G: 239, B: 241}, LineHeight: 4.4},
	Notice:   print.Style{Font: "Helvetica", SizePt: 10, Italic: true, Color: print.RGB{R: 120, G: 144, B: 156}},
}

// sidebarHeading restyles section headings for the dark column.
var modernSidebarHeading = print.Style{Font: "Helvetica", SizePt: 9.5, Bold: true, Color: print.RGB{R: 236, G: 239, B: 241}, SpaceAfter: 2.5}

var modernSidebarFill = print.RGB{R: 38, G: 50, B: 56}

// modernBadgeFill matches the screen badge background (#37474f).
var modernBadgeFill = print.RGB{R: 55, G: 71, B: 79}

var modernBadgeStyle = print.Style{Font: "Helvetica", SizePt: 16, Bold: true, Color: print.RGB{R: 236, G: 239, B: 241}, Align: "C", SpaceAfter: 3}

// initialsBadge is the print counterpart of the screen badge: a filled band
// carrying the profile monogram at the top of the sidebar.
func initialsBadge(initials string) print.Box {
	return print.Box{
		Fill:       &modernBadgeFill,
		FillHeight: 16,
		Pad:        4,
		Texts:      []print.Text{{Content: initials, Style: modernBadgeStyle}},
	}
}

func (t *Modern) RenderPrint(data *types.ResumeData) (*print.Document, error) {
	mv := splitColumns(buildView(data, t.options()))
	st := modernStyles

	sidebar := print.Box{WidthPct: 34, Fill: &modernSidebarFill, Pad: 5}
	if p := mv.Profile; p != nil {
		if p.Initials != "" {
			sidebar.Children = append(sidebar.Children, initialsBadge(p.Initials))
		}
		identity := print.Box{Section: sections.IDPersonalInfo}
		if p.FullName != "" {
			identity.Texts = append(identity.Texts, print.Text{Content: p.FullName, Style: st.Name})
		}
		if contact := contactLine(p, "\n"); contact != "" {
			identity.Texts = append(identity.Texts, print.Text{Content: contact, Style: st.Contact})
		}
		sidebar.Children = append(sidebar.Children, identity)
	} else {
		sidebar.Children = append(sidebar.Children, noProfileNotice(st))
	}
	for i := range mv.Sidebar {
		sideStyles := st
		sideStyles.Heading = modernSidebarHeading
		sideStyles.Title = print.Style{Font: "Helvetica", SizePt: 9, Bold: true, Color: print.RGB{R: 236, G: 239, B: 241}, SpaceAfter: 0.5}
		sideStyles.Meta = print.Style{Font: "Helvetica", SizePt: 8, Color: print.RGB{R: 207, G: 216, B: 220}, LineHeight: 4}
		sidebar.Children = append(sidebar.Children, printSection(&mv.Sidebar[i], sideStyles))
	}

	main := print.Box{WidthPct: 66, Pad: 5}
	if p := mv.Profile; p != nil && p.Summary != "" {
		main.Texts = append(main.Texts, print.Text{Content: p.Summary, Style: st.Summary})
	}
	for i := range mv.Main {
		main.Children = append(main.Children, printSection(&mv.Main[i], st))
	}

	return &print.Document{
		Title: mv.Title,
		Pages: []print.Page{{
			Margin: 12,
			Boxes:  []print.Box{{Dir: print.Row, Children: []print.Box{sidebar, main}}},
		}},
	}, nil
}
