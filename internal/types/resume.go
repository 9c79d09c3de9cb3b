// Package types provides type definitions for structured data used throughout the resume-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Address represents the nullable parts of a postal address.
// Every field is independently optional; an empty string means absent.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Profile represents the personal-info block of a resume.
// All fields are optional; renderers must guard each one individually.
type Profile struct {
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string   `json:"phone,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	LinkedIn  string   `json:"linked_in,omitempty"`
	GitHub    string   `json:"github,omitempty"`
	Web       string   `json:"web,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	Address   *Address `json:"address,omitempty"`
}

// FullName joins first and last name, tolerating either being absent.
func (p *Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Initials returns up to two uppercase initials for badge-style templates.
func (p *Profile) Initials() string {
	var sb strings.Builder
	for _, part := range []string{p.FirstName, p.LastName} {
		part = strings.TrimSpace(part)
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]))
		}
	}
	return sb.String()
}

// WorkExperience represents one employment entry.
// A nil EndDate means the position is currently ongoing, never a parse error.
type WorkExperience struct {
	JobTitle    string  `json:"job_title"`
	Employer    string  `json:"employer"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	Description string  `json:"description,omitempty"`
}

// EducationRecord represents one education entry.
type EducationRecord struct {
	Institution   string  `json:"institution"`
	Qualification string  `json:"qualification,omitempty"`
	DegreeLevel   string  `json:"degree_level,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Grade         string  `json:"grade,omitempty"`
	GradeType     string  `json:"grade_type,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// LanguageSkill represents proficiency in one language across four dimensions.
// Each dimension is an optional proficiency code (e.g. CEFR "B2").
type LanguageSkill struct {
	Language  string `json:"language"`
	Listening string `json:"listening,omitempty"`
	Reading   string `json:"reading,omitempty"`
	Speaking  string `json:"speaking,omitempty"`
	Writing   string `json:"writing,omitempty"`
}

// Skill represents one named skill with an optional proficiency label.
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// SkillGroup represents a category of skills. Templates may flatten the
// two-level grouping to a single list; that projection is template-local.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// ProjectRecord represents one project entry.
type ProjectRecord struct {
	Name          string  `json:"name"`
	Role          string  `json:"role,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Description   string  `json:"description,omitempty"`
	ReferenceLink string  `json:"reference_link,omitempty" validate:"omitempty,url"`
}

// CertificationRecord represents one certification entry.
type CertificationRecord struct {
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer,omitempty"`
	IssueDate     *string `json:"issue_date,omitempty"`
	CredentialURL string  `json:"credential_url,omitempty" validate:"omitempty,url"`
}

// PositionOfResponsibility represents one leadership/volunteering entry.
type PositionOfResponsibility struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	ReferenceLink string  `json:"reference_link,omitempty" validate:"omitempty,url"`
}

// ResumeData is the canonical, template-agnostic shape of one resume.
// It is an immutable snapshot constructed per render: renderers never
// mutate it, never persist it, and never re-sort its collections.
// Date fields are raw ISO-8601 strings; formatting happens in the
// format package, never in the model.
type ResumeData struct {
	Profile                          *Profile                   `json:"profile,omitempty"`
	WorkExperiences                  []WorkExperience           `json:"work_experiences,omitempty"`
	EducationRecords                 []EducationRecord          `json:"education_records,omitempty"`
	LanguageSkills                   []LanguageSkill            `json:"language_skills,omitempty"`
	UserSkills                       []SkillGroup               `json:"user_skills,omitempty"`
	ProjectRecords                   []ProjectRecord            `json:"project_records,omitempty"`
	CertificationsRecords            []CertificationRecord      `json:"certifications_records,omitempty"`
	PositionsOfResponsibilityRecords []PositionOfResponsibility `json:"positions_of_responsibility_records,omitempty"`
}

var validate = validator.New()

// Validate checks field-level constraints (email and URL formats) on a
// resume snapshot. It is called at the ingest boundary, never by renderers:
// a snapshot that fails validation is rejected before rendering begins.
func (r *ResumeData) Validate() error {
	return validate.Struct(r)
}
