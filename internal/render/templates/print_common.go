package templates

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/render/print"
)

// printStyles is the complete style table one print template declares for
// itself. The redundancy across templates is intentional: print output must
// not depend on any shared theme state that could change between renders.
type printStyles struct {
	Name     print.Style
	Contact  print.Style
	Summary  print.Style
	Heading  print.Style
	Title    print.Style
	Subtitle print.Style
	Meta     print.Style
	Body     print.Style
	Tag      print.Style
	Notice   print.Style
}

// noProfileNotice is the print-surface degradation for an entirely absent
// profile: a single explicit notice line instead of a header.
func noProfileNotice(st printStyles) print.Box {
	return print.Box{Texts: []print.Text{{Content: "No profile data", Style: st.Notice}}}
}

// contactLine joins the present-only contact fields of a profile view with
// the given separator.
func contactLine(p *ProfileView, sep string) string {
	var parts []string
	for _, v := range []string{p.Email, p.Phone, p.Address, p.LinkedIn, p.GitHub, p.Web} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// factsLine joins labeled facts into one display line.
func factsLine(facts []Fact) string {
	parts := make([]string, 0, len(facts))
	for _, f := range facts {
		parts = append(parts, f.Label+": "+f.Value)
	}
	return strings.Join(parts, " · ")
}

// printItem lays out one section entry with the template's style table. The
// structural walk is shared; every visual choice comes from the table.
func printItem(it *Item, st printStyles) []print.Text {
	var texts []print.Text
	if it.Title != "" {
		texts = append(texts, print.Text{Content: it.Title, Style: st.Title})
	}
	var sub []string
	if it.Subtitle != "" {
		sub = append(sub, it.Subtitle)
	}
	if it.Meta != "" {
		sub = append(sub, it.Meta)
	}
	if it.Period != "" {
		sub = append(sub, it.Period)
	}
	if len(sub) > 0 {
		texts = append(texts, print.Text{Content: strings.Join(sub, " · "), Style: st.Subtitle})
	}
	if it.Paragraph != "" {
		texts = append(texts, print.Text{Content: it.Paragraph, Style: st.Body})
	}
	for _, b := range it.Bullets {
		texts = append(texts, print.Text{Content: b, Style: st.Body, Bullet: true})
	}
	if len(it.Tags) > 0 {
		texts = append(texts, print.Text{Content: strings.Join(it.Tags, " · "), Style: st.Tag})
	}
	if len(it.Facts) > 0 {
		texts = append(texts, print.Text{Content: factsLine(it.Facts), Style: st.Meta})
	}
	if it.Link != "" {
		texts = append(texts, print.Text{Content: it.Link, Style: st.Meta})
	}
	// Space below the entry rides on the last run.
	if n := len(texts); n > 0 {
		texts[n-1].Style.SpaceAfter += 2
	}
	return texts
}

// printSection lays out one full section as a tagged box.
func printSection(sec *Section, st printStyles) print.Box {
	box := print.Box{Section: sec.ID}
	box.Texts = append(box.Texts, print.Text{Content: sec.Heading, Style: st.Heading})
	for i := range sec.Items {
		box.Texts = append(box.Texts, printItem(&sec.Items[i], st)...)
	}
	return box
}
