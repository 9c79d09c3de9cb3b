// Package templates provides the built-in template implementations. Each
// template builds one formatted view from the resume snapshot and renders
// that view on both surfaces, so the two surfaces of a template id cannot
// drift apart in section set or order.
package templates

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/format"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Section headings shared by all built-in templates.
var sectionHeadings = map[string]string{
	sections.IDWorkExperience: "Work Experience",
	sections.IDEducation:      "Education",
	sections.IDProjects:       "Projects",
	sections.IDSkills:         "Skills",
	sections.IDLanguageSkills: "Languages",
	sections.IDCertifications: "Certifications",
	sections.IDPositions:      "Positions of Responsibility",
}

// viewOptions are the per-template presentation choices layered on top of the
// shared formatting utilities: date granularity, which address parts to join,
// and whether the two-level skill grouping is flattened.
type viewOptions struct {
	date          func(*string) string
	addressParts  []format.AddressPart
	flattenSkills bool
}

// Fact is one labeled value, used for language proficiency dimensions.
type Fact struct {
	Label string
	Value string
}

// Item is one rendered entry of a section. Fields are pre-formatted strings;
// empty means absent and must not be rendered.
type Item struct {
	Title     string
	Subtitle  string
	Meta      string // location or degree level
	Period    string
	Link      string // protocol-stripped reference link
	Paragraph string // description without embedded bullet markers
	Bullets   []string
	Tags      []string
	Facts     []Fact
}

// Section is one logical section with its entries in input order.
type Section struct {
	ID      string
	Heading string
	Items   []Item
}

// ProfileView is the formatted personal-info block. A nil ProfileView on the
// View means the profile is entirely absent and the surface must degrade
// gracefully.
type ProfileView struct {
	FullName string
	Initials string
	Email    string
	Phone    string
	Summary  string
	Address  string
	LinkedIn string
	GitHub   string
	Web      string
	PhotoURL string
}

// View is the complete formatted input for both surfaces of one template.
type View struct {
	Title    string
	Profile  *ProfileView
	Sections []Section
}

// SectionIDs returns the section ids present in the view, in order.
func (v *View) SectionIDs() []string {
	ids := make([]string, 0, len(v.Sections))
	for i := range v.Sections {
		ids = append(ids, v.Sections[i].ID)
	}
	return ids
}

// buildView assembles the formatted view from a snapshot. Sections appear in
// canonical order, and only when their backing collection is non-empty; item
// order inside each section is the input order, untouched.
func buildView(data *types.ResumeData, o viewOptions) *View {
	v := &View{Title: "Resume"}

	if p := data.Profile; p != nil {
		pv := &ProfileView{
			FullName: p.FullName(),
			Initials: p.Initials(),
			Email:    strings.TrimSpace(p.Email),
			Phone:    strings.TrimSpace(p.Phone),
			Summary:  strings.TrimSpace(p.Summary),
			LinkedIn: format.StripProtocol(strings.TrimSpace(p.LinkedIn)),
			GitHub:   format.StripProtocol(strings.TrimSpace(p.GitHub)),
			Web:      format.StripProtocol(strings.TrimSpace(p.Web)),
			PhotoURL: strings.TrimSpace(p.PhotoURL),
		}
		if joined := format.Address(p.Address, o.addressParts...); joined != nil {
			pv.Address = *joined
		}
		if pv.FullName != "" {
			v.Title = pv.FullName + " – Resume"
		}
		v.Profile = pv
	}

	if items := workItems(data.WorkExperiences, o); len(items) > 0 {
		v.addSection(sections.IDWorkExperience, items)
	}
	if items := educationItems(data.EducationRecords, o); len(items) > 0 {
		v.addSection(sections.IDEducation, items)
	}
	if items := projectItems(data.ProjectRecords, o); len(items) > 0 {
		v.addSection(sections.IDProjects, items)
	}
	if items := skillItems(data.UserSkills, o); len(items) > 0 {
		v.addSection(sections.IDSkills, items)
	}
	if items := languageItems(data.LanguageSkills); len(items) > 0 {
		v.addSection(sections.IDLanguageSkills, items)
	}
	if items := certificationItems(data.CertificationsRecords, o); len(items) > 0 {
		v.addSection(sections.IDCertifications, items)
	}
	if items := positionItems(data.PositionsOfResponsibilityRecords, o); len(items) > 0 {
		v.addSection(sections.IDPositions, items)
	}

	return v
}

func (v *View) addSection(id string, items []Item) {
	v.Sections = append(v.Sections, Section{ID: id, Heading: sectionHeadings[id], Items: items})
}

// period formats a date range, or nothing when the entry carries no dates at
// all — "Present – Present" is never a meaningful display.
func period(start, end *string, o viewOptions) string {
	if start == nil && end == nil {
		return ""
	}
	return format.Range(start, end, o.date)
}

// describe fills either Bullets or Paragraph from free-form description text,
// using the shared micro-parser so markers never leak into output.
func describe(it *Item, description string) {
	description = strings.TrimSpace(description)
	if description == "" {
		return
	}
	if format.HasBulletMarkers(description) {
		it.Bullets = format.SplitBullets(description)
		return
	}
	it.Paragraph = strings.Join(format.SplitBullets(description), " ")
}

func workItems(records []types.WorkExperience, o viewOptions) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{
			Title:    r.JobTitle,
			Subtitle: r.Employer,
			Period:   period(r.StartDate, r.EndDate, o),
		}
		if place := format.Place(r.City, r.Country); place != nil {
			it.Meta = *place
		}
		describe(&it, r.Description)
		items = append(items, it)
	}
	return items
}

func educationItems(records []types.EducationRecord, o viewOptions) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{
			Title:    r.Institution,
			Subtitle: r.Qualification,
			Meta:     r.DegreeLevel,
			Period:   period(r.StartDate, r.EndDate, o),
		}
		if r.Grade != "" {
			grade := r.Grade
			if r.GradeType != "" {
				grade += " " + r.GradeType
			}
			it.Facts = append(it.Facts, Fact{Label: "Grade", Value: grade})
		}
		describe(&it, r.Description)
		items = append(items, it)
	}
	return items
}

func projectItems(records []types.ProjectRecord, o viewOptions) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{
			Title:    r.Name,
			Subtitle: r.Role,
			Period:   period(r.StartDate, r.EndDate, o),
			Link:     format.StripProtocol(strings.TrimSpace(r.ReferenceLink)),
		}
		describe(&it, r.Description)
		items = append(items, it)
	}
	return items
}

func skillItems(groups []types.SkillGroup, o viewOptions) []Item {
	if len(groups) == 0 {
		return nil
	}
	if o.flattenSkills {
		// Lossy template-local projection: one flat tag list, category
		// boundaries dropped, input order preserved across groups.
		var tags []string
		for i := range groups {
			for _, s := range groups[i].Skills {
				tags = append(tags, skillTag(s))
			}
		}
		if len(tags) == 0 {
			return nil
		}
		return []Item{{Tags: tags}}
	}
	var items []Item
	for i := range groups {
		g := &groups[i]
		if len(g.Skills) == 0 {
			continue
		}
		it := Item{Title: g.Category}
		for _, s := range g.Skills {
			it.Tags = append(it.Tags, skillTag(s))
		}
		items = append(items, it)
	}
	return items
}

func skillTag(s types.Skill) string {
	if s.Proficiency != "" {
		return s.Name + " (" + s.Proficiency + ")"
	}
	return s.Name
}

func languageItems(records []types.LanguageSkill) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{Title: r.Language}
		for _, dim := range []Fact{
			{Label: "Listening", Value: r.Listening},
			{Label: "Reading", Value: r.Reading},
			{Label: "Speaking", Value: r.Speaking},
			{Label: "Writing", Value: r.Writing},
		} {
			if dim.Value != "" {
				it.Facts = append(it.Facts, dim)
			}
		}
		items = append(items, it)
	}
	return items
}

func certificationItems(records []types.CertificationRecord, o viewOptions) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{
			Title:    r.Name,
			Subtitle: r.Issuer,
			Link:     format.StripProtocol(strings.TrimSpace(r.CredentialURL)),
		}
		// An issue date is a single point in time; absent means "not shown",
		// not "ongoing", so the Present sentinel does not apply here.
		if r.IssueDate != nil {
			it.Period = o.date(r.IssueDate)
		}
		items = append(items, it)
	}
	return items
}

func positionItems(records []types.PositionOfResponsibility, o viewOptions) []Item {
	items := make([]Item, 0, len(records))
	for i := range records {
		r := &records[i]
		it := Item{
			Title:  r.Name,
			Period: period(r.StartDate, r.EndDate, o),
			Link:   format.StripProtocol(strings.TrimSpace(r.ReferenceLink)),
		}
		describe(&it, r.Description)
		items = append(items, it)
	}
	return items
}
