// Package sections provides the section selection policy: which logical resume
// sections are mandatory vs. toggle-able, and the default composition. The
// policy only filters which sections are requested — it never fabricates data,
// and a checked section with an empty backing collection still renders as
// omitted downstream.
package sections

import "github.com/jonathan/resume-renderer/internal/types"

// Canonical section identifiers shared by the policy and every renderer.
const (
	IDPersonalInfo   = "personal-info"
	IDWorkExperience = "work-experience"
	IDEducation      = "education"
	IDLanguageSkills = "language-skills"
	IDSkills         = "skills"
	IDProjects       = "projects"
	IDCertifications = "certifications"
	IDPositions      = "positions-of-responsibility"
)

// Config describes one toggle-able section as exposed to the UI.
type Config struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Checked     bool   `json:"checked"`
}

// Policy holds the ordered section configuration for one editing session.
// Required sections are always checked and immutable from the outside.
type Policy struct {
	sections []Config
}

// Default returns the shipped five-section composition: personal-info is
// required, the rest are optional and default-checked.
func Default() *Policy {
	return &Policy{sections: []Config{
		{ID: IDPersonalInfo, Label: "Personal Information", Description: "Name, contact details, and summary", Required: true, Checked: true},
		{ID: IDWorkExperience, Label: "Work Experience", Description: "Employment history", Checked: true},
		{ID: IDEducation, Label: "Education", Description: "Degrees and qualifications", Checked: true},
		{ID: IDLanguageSkills, Label: "Language Skills", Description: "Language proficiencies", Checked: true},
		{ID: IDSkills, Label: "Skills", Description: "Skill categories and proficiencies", Checked: true},
	}}
}

// Sections returns a snapshot copy of the current configuration in order.
func (p *Policy) Sections() []Config {
	out := make([]Config, len(p.sections))
	copy(out, p.sections)
	return out
}

// Toggle flips the checked state of a non-required section. It is a no-op on
// required sections and on unknown ids; the return reports whether anything
// changed.
func (p *Policy) Toggle(id string) bool {
	for i := range p.sections {
		if p.sections[i].ID != id {
			continue
		}
		if p.sections[i].Required {
			return false
		}
		p.sections[i].Checked = !p.sections[i].Checked
		return true
	}
	return false
}

// SelectAll checks every section.
func (p *Policy) SelectAll() {
	for i := range p.sections {
		p.sections[i].Checked = true
	}
}

// DeselectAll unchecks every non-required section. Required sections stay
// checked.
func (p *Policy) DeselectAll() {
	for i := range p.sections {
		if !p.sections[i].Required {
			p.sections[i].Checked = false
		}
	}
}

// Checked reports whether a section is currently requested. Sections the
// policy does not manage (projects, certifications, positions) are always
// requested: the default composition only governs the five shipped toggles.
func (p *Policy) Checked(id string) bool {
	for i := range p.sections {
		if p.sections[i].ID == id {
			return p.sections[i].Checked
		}
	}
	return true
}

// Apply narrows a resume snapshot to the checked sections by emptying the
// backing collections of unchecked ones. This is the caller-side pre-filter:
// renderers never consult the policy directly, they only see the narrowed
// input. The original snapshot is never mutated; the profile is never removed
// because personal-info is required.
func (p *Policy) Apply(data *types.ResumeData) *types.ResumeData {
	if data == nil {
		return nil
	}
	out := *data
	if !p.Checked(IDWorkExperience) {
		out.WorkExperiences = nil
	}
	if !p.Checked(IDEducation) {
		out.EducationRecords = nil
	}
	if !p.Checked(IDLanguageSkills) {
		out.LanguageSkills = nil
	}
	if !p.Checked(IDSkills) {
		out.UserSkills = nil
	}
	if !p.Checked(IDProjects) {
		out.ProjectRecords = nil
	}
	if !p.Checked(IDCertifications) {
		out.CertificationsRecords = nil
	}
	if !p.Checked(IDPositions) {
		out.PositionsOfResponsibilityRecords = nil
	}
	return &out
}
