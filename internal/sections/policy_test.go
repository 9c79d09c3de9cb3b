package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/types"
)

func TestDefault_Composition(t *testing.T) {
	p := Default()
	got := p.Sections()

	require.Len(t, got, 5)
	assert.Equal(t, IDPersonalInfo, got[0].ID)
	assert.True(t, got[0].Required)
	for _, s := range got {
		assert.True(t, s.Checked, "section %s should default to checked", s.ID)
	}
}

func TestToggle_OptionalSection(t *testing.T) {
	p := Default()

	changed := p.Toggle(IDEducation)
	assert.True(t, changed)
	assert.False(t, p.Checked(IDEducation))

	changed = p.Toggle(IDEducation)
	assert.True(t, changed)
	assert.True(t, p.Checked(IDEducation))
}

func TestToggle_RequiredSectionIsNoOp(t *testing.T) {
	p := Default()

	changed := p.Toggle(IDPersonalInfo)
	assert.False(t, changed)
	assert.True(t, p.Checked(IDPersonalInfo))
}

func TestToggle_UnknownSectionIsNoOp(t *testing.T) {
	p := Default()
	assert.False(t, p.Toggle("no-such-section"))
}

func TestDeselectAll_RequiredStaysChecked(t *testing.T) {
	p := Default()
	p.DeselectAll()

	for _, s := range p.Sections() {
		if s.Required {
			assert.True(t, s.Checked)
		} else {
			assert.False(t, s.Checked)
		}
	}
}

func TestSelectAll_AfterDeselect(t *testing.T) {
	p := Default()
	p.DeselectAll()
	p.SelectAll()

	for _, s := range p.Sections() {
		assert.True(t, s.Checked)
	}
}

func TestApply_EmptiesUncheckedCollections(t *testing.T) {
	p := Default()
	p.Toggle(IDEducation)
	p.Toggle(IDSkills)

	data := &types.ResumeData{
		Profile:          &types.Profile{FirstName: "Ada"},
		WorkExperiences:  []types.WorkExperience{{JobTitle: "Engineer", Employer: "Acme"}},
		EducationRecords: []types.EducationRecord{{Institution: "Somewhere"}},
		UserSkills:       []types.SkillGroup{{Category: "Languages", Skills: []types.Skill{{Name: "Go"}}}},
	}

	narrowed := p.Apply(data)

	assert.Empty(t, narrowed.EducationRecords)
	assert.Empty(t, narrowed.UserSkills)
	assert.Len(t, narrowed.WorkExperiences, 1)
	assert.NotNil(t, narrowed.Profile)

	// The original snapshot is untouched.
	assert.Len(t, data.EducationRecords, 1)
	assert.Len(t, data.UserSkills, 1)
}

func TestApply_NeverFabricatesData(t *testing.T) {
	p := Default()
	narrowed := p.Apply(&types.ResumeData{})

	assert.Nil(t, narrowed.Profile)
	assert.Empty(t, narrowed.WorkExperiences)
}

func TestChecked_UnmanagedSectionsAlwaysRequested(t *testing.T) {
	p := Default()
	p.DeselectAll()

	assert.True(t, p.Checked(IDProjects))
	assert.True(t, p.Checked(IDCertifications))
	assert.True(t, p.Checked(IDPositions))
}
