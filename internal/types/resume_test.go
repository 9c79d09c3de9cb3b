package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_FullName(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected string
	}{
		{"both names", Profile{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Profile{FirstName: "Ada"}, "Ada"},
		{"last only", Profile{LastName: "Lovelace"}, "Lovelace"},
		{"neither", Profile{}, ""},
		{"whitespace trimmed", Profile{FirstName: " Ada ", LastName: " Lovelace "}, "Ada Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.FullName())
		})
	}
}

func TestProfile_Initials(t *testing.T) {
	assert.Equal(t, "AL", (&Profile{FirstName: "Ada", LastName: "Lovelace"}).Initials())
	assert.Equal(t, "A", (&Profile{FirstName: "ada"}).Initials())
	assert.Equal(t, "", (&Profile{}).Initials())
}

func TestResumeData_Validate(t *testing.T) {
	valid := &ResumeData{Profile: &Profile{Email: "ada@example.org"}}
	assert.NoError(t, valid.Validate())

	empty := &ResumeData{}
	assert.NoError(t, empty.Validate(), "all fields are optional")

	badEmail := &ResumeData{Profile: &Profile{Email: "not-an-email"}}
	assert.Error(t, badEmail.Validate())

	badURL := &ResumeData{ProjectRecords: []ProjectRecord{{Name: "Engine", ReferenceLink: "nope"}}}
	assert.Error(t, badURL.Validate())
}
