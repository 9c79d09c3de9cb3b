package templates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/types"
)

func strPtr(s string) *string { return &s }

// adaLovelace is the minimal scenario snapshot: a profile, one ongoing work
// entry, and nothing else.
func adaLovelace() *types.ResumeData {
	return &types.ResumeData{
		Profile: &types.Profile{FirstName: "Ada", LastName: "Lovelace"},
		WorkExperiences: []types.WorkExperience{
			{JobTitle: "Engineer", Employer: "Acme", StartDate: strPtr("2020-01-01"), EndDate: nil},
		},
	}
}

// fullSnapshot populates every collection.
func fullSnapshot() *types.ResumeData {
	return &types.ResumeData{
		Profile: &types.Profile{
			FirstName: "Grace", LastName: "Hopper",
			Email: "grace@example.com", Phone: "+1 555 0100",
			Summary:  "Rear admiral and compiler pioneer.",
			LinkedIn: "https://linkedin.com/in/grace", GitHub: "https://github.com/grace",
			Web:     "https://grace.example.com",
			Address: &types.Address{City: "Arlington", State: "VA", Country: "USA"},
		},
		WorkExperiences: []types.WorkExperience{
			{JobTitle: "Engineer", Employer: "Acme", StartDate: strPtr("2020-01-01"),
				City: "Boston", Country: "USA",
				Description: "• Built the flow compiler\n• Cut build times in half"},
			{JobTitle: "Analyst", Employer: "Initech", StartDate: strPtr("2015-06-01"), EndDate: strPtr("2019-12-31"),
				Description: "Maintained the ledger pipeline end to end."},
		},
		EducationRecords: []types.EducationRecord{
			{Institution: "Yale", Qualification: "PhD Mathematics", DegreeLevel: "Doctorate",
				StartDate: strPtr("1930-09-01"), EndDate: strPtr("1934-06-01"), Grade: "4.0", GradeType: "GPA"},
		},
		LanguageSkills: []types.LanguageSkill{
			{Language: "English", Listening: "C2", Reading: "C2", Speaking: "C2", Writing: "C2"},
			{Language: "French", Reading: "B1"},
		},
		UserSkills: []types.SkillGroup{
			{Category: "Languages", Skills: []types.Skill{{Name: "COBOL", Proficiency: "Expert"}, {Name: "FORTRAN"}}},
			{Category: "Tools", Skills: []types.Skill{{Name: "UNIVAC"}}},
		},
		ProjectRecords: []types.ProjectRecord{
			{Name: "FLOW-MATIC", Role: "Lead", StartDate: strPtr("1955-01-01"), EndDate: strPtr("1959-01-01"),
				Description: "English-like data processing language.", ReferenceLink: "https://example.com/flowmatic"},
		},
		CertificationsRecords: []types.CertificationRecord{
			{Name: "Naval Reserve", Issuer: "US Navy", IssueDate: strPtr("1943-12-01")},
		},
		PositionsOfResponsibilityRecords: []types.PositionOfResponsibility{
			{Name: "Society Chair", Description: "Chaired the computing society.", StartDate: strPtr("1950-01-01"), EndDate: strPtr("1952-01-01")},
		},
	}
}

func allTemplates() []render.Template {
	return []render.Template{NewATS(), NewModern(), NewClassic()}
}

// htmlSections extracts the data-section ids of a screen render in document
// order.
func htmlSections(t *testing.T, html string) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	var ids []string
	doc.Find("[data-section]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("data-section")
		ids = append(ids, id)
	})
	return ids
}

// docTexts flattens every text run of a print document in emission order.
func docTexts(doc *print.Document) []string {
	var out []string
	var walk func(boxes []print.Box)
	walk = func(boxes []print.Box) {
		for i := range boxes {
			for _, txt := range boxes[i].Texts {
				out = append(out, txt.Content)
			}
			walk(boxes[i].Children)
		}
	}
	for i := range doc.Pages {
		walk(doc.Pages[i].Boxes)
	}
	return out
}

func TestATS_AdaLovelaceScenario(t *testing.T) {
	tmpl := NewATS()
	html, err := tmpl.RenderScreen(adaLovelace())
	require.NoError(t, err)

	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "Engineer")
	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, "2020")
	assert.Contains(t, html, "Present")
	assert.NotContains(t, html, "Education")
	assert.NotContains(t, html, "Skills")

	ids := htmlSections(t, html)
	assert.Equal(t, []string{sections.IDPersonalInfo, sections.IDWorkExperience}, ids)

	doc, err := tmpl.RenderPrint(adaLovelace())
	require.NoError(t, err)
	assert.Equal(t, []string{sections.IDPersonalInfo, sections.IDWorkExperience}, doc.Sections())

	joined := strings.Join(docTexts(doc), "\n")
	assert.Contains(t, joined, "Ada Lovelace")
	assert.Contains(t, joined, "Engineer")
	assert.Contains(t, joined, "Present")
}

func TestContentEquivalence_AcrossTemplates(t *testing.T) {
	// Two different templates given identical data must both include the same
	// leaf facts, even though visual grouping differs.
	data := adaLovelace()
	for _, tmpl := range []render.Template{NewATS(), NewModern()} {
		html, err := tmpl.RenderScreen(data)
		require.NoError(t, err, tmpl.ID())
		for _, fact := range []string{"Ada Lovelace", "Engineer", "Acme", "2020", "Present"} {
			assert.Contains(t, html, fact, "template %s missing %q", tmpl.ID(), fact)
		}
	}
}

func TestOmissionLaw_AllTemplates(t *testing.T) {
	empty := &types.ResumeData{Profile: &types.Profile{FirstName: "Solo"}}
	full := fullSnapshot()

	for _, tmpl := range allTemplates() {
		html, err := tmpl.RenderScreen(empty)
		require.NoError(t, err, tmpl.ID())
		assert.Equal(t, []string{sections.IDPersonalInfo}, htmlSections(t, html),
			"template %s must omit every empty section", tmpl.ID())

		html, err = tmpl.RenderScreen(full)
		require.NoError(t, err, tmpl.ID())
		ids := htmlSections(t, html)
		for _, want := range []string{
			sections.IDWorkExperience, sections.IDEducation, sections.IDProjects,
			sections.IDSkills, sections.IDLanguageSkills, sections.IDCertifications,
			sections.IDPositions,
		} {
			assert.Contains(t, ids, want, "template %s must render non-empty section %s", tmpl.ID(), want)
		}
	}
}

func TestOrderPreservation_AllTemplates(t *testing.T) {
	// Sentinel ordering: items tagged 1..5 must come out in input order.
	data := &types.ResumeData{Profile: &types.Profile{FirstName: "Ord"}}
	for i := 1; i <= 5; i++ {
		data.WorkExperiences = append(data.WorkExperiences, types.WorkExperience{
			JobTitle: fmt.Sprintf("Role %d", i), Employer: fmt.Sprintf("Employer %d", i),
		})
	}

	for _, tmpl := range allTemplates() {
		html, err := tmpl.RenderScreen(data)
		require.NoError(t, err, tmpl.ID())
		prev := -1
		for i := 1; i <= 5; i++ {
			pos := strings.Index(html, fmt.Sprintf("Role %d", i))
			require.GreaterOrEqual(t, pos, 0, "template %s missing Role %d", tmpl.ID(), i)
			assert.Greater(t, pos, prev, "template %s reordered Role %d", tmpl.ID(), i)
			prev = pos
		}

		doc, err := tmpl.RenderPrint(data)
		require.NoError(t, err, tmpl.ID())
		joined := strings.Join(docTexts(doc), "\n")
		prev = -1
		for i := 1; i <= 5; i++ {
			pos := strings.Index(joined, fmt.Sprintf("Role %d", i))
			require.GreaterOrEqual(t, pos, 0)
			assert.Greater(t, pos, prev, "print surface of %s reordered Role %d", tmpl.ID(), i)
			prev = pos
		}
	}
}

func TestSurfaceParity_AllTemplates(t *testing.T) {
	data := fullSnapshot()
	for _, tmpl := range allTemplates() {
		html, err := tmpl.RenderScreen(data)
		require.NoError(t, err, tmpl.ID())
		doc, err := tmpl.RenderPrint(data)
		require.NoError(t, err, tmpl.ID())

		assert.Equal(t, htmlSections(t, html), doc.Sections(),
			"template %s: screen and print surfaces disagree on sections", tmpl.ID())
	}
}

func TestDeterminism_AllTemplates(t *testing.T) {
	data := fullSnapshot()
	for _, tmpl := range allTemplates() {
		first, err := tmpl.RenderScreen(data)
		require.NoError(t, err)
		second, err := tmpl.RenderScreen(data)
		require.NoError(t, err)
		assert.Equal(t, first, second, "template %s screen render is not deterministic", tmpl.ID())

		docA, err := tmpl.RenderPrint(data)
		require.NoError(t, err)
		docB, err := tmpl.RenderPrint(data)
		require.NoError(t, err)
		assert.Equal(t, docA, docB, "template %s print render is not deterministic", tmpl.ID())
	}
}

func TestAbsentProfile_DegradesGracefully(t *testing.T) {
	data := &types.ResumeData{
		WorkExperiences: []types.WorkExperience{{JobTitle: "Engineer", Employer: "Acme"}},
	}

	for _, tmpl := range allTemplates() {
		html, err := tmpl.RenderScreen(data)
		require.NoError(t, err, tmpl.ID())
		assert.Contains(t, html, "placeholder", "template %s screen should render a placeholder shell", tmpl.ID())
		assert.NotContains(t, htmlSections(t, html), sections.IDPersonalInfo)

		doc, err := tmpl.RenderPrint(data)
		require.NoError(t, err, tmpl.ID())
		assert.Contains(t, strings.Join(docTexts(doc), "\n"), "No profile data",
			"template %s print should carry the explicit notice", tmpl.ID())
		assert.NotContains(t, doc.Sections(), sections.IDPersonalInfo)
	}
}

func TestInputNeverMutated(t *testing.T) {
	data := fullSnapshot()
	want := fullSnapshot()

	for _, tmpl := range allTemplates() {
		_, err := tmpl.RenderScreen(data)
		require.NoError(t, err)
		_, err = tmpl.RenderPrint(data)
		require.NoError(t, err)
	}
	assert.Equal(t, want, data, "rendering must not mutate the snapshot")
}

func TestModern_FlattensSkillGroups(t *testing.T) {
	html, err := NewModern().RenderScreen(fullSnapshot())
	require.NoError(t, err)

	// Flattened projection keeps the skills but drops category headings.
	assert.Contains(t, html, "COBOL (Expert)")
	assert.Contains(t, html, "UNIVAC")
	assert.NotContains(t, html, "<h3>Languages</h3>")
}

func TestModern_InitialsBadgeOnBothSurfaces(t *testing.T) {
	data := fullSnapshot()

	html, err := NewModern().RenderScreen(data)
	require.NoError(t, err)
	assert.Contains(t, html, `class="badge"`)
	assert.Contains(t, html, ">GH<")

	doc, err := NewModern().RenderPrint(data)
	require.NoError(t, err)
	assert.Contains(t, docTexts(doc), "GH")
}

func TestModern_PhotoReplacesScreenBadge(t *testing.T) {
	data := fullSnapshot()
	data.Profile.PhotoURL = "https://example.com/grace.jpg"

	html, err := NewModern().RenderScreen(data)
	require.NoError(t, err)
	assert.Contains(t, html, `class="photo"`)
	assert.NotContains(t, html, `class="badge"`)
}

func TestClassic_KeepsLanguageDimensions(t *testing.T) {
	html, err := NewClassic().RenderScreen(fullSnapshot())
	require.NoError(t, err)

	for _, dim := range []string{"Listening: C2", "Reading: B1"} {
		assert.Contains(t, html, dim)
	}
}

func TestBulletMarkersNeverLeak(t *testing.T) {
	data := adaLovelace()
	data.WorkExperiences[0].Description = "• Drove the rewrite\n• Halved latency"

	for _, tmpl := range allTemplates() {
		html, err := tmpl.RenderScreen(data)
		require.NoError(t, err, tmpl.ID())
		assert.Contains(t, html, "Drove the rewrite")
		assert.NotContains(t, html, "• Drove", "template %s leaked a raw marker", tmpl.ID())
	}
}
