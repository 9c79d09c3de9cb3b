package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumePayload_MinimalValid(t *testing.T) {
	payload := []byte(`{"profile": {"first_name": "Ada", "last_name": "Lovelace"}}`)
	assert.NoError(t, ValidateResumePayload(payload))
}

func TestValidateResumePayload_EmptyObject(t *testing.T) {
	// Every top-level collection is optional.
	assert.NoError(t, ValidateResumePayload([]byte(`{}`)))
}

func TestValidateResumePayload_NullEndDate(t *testing.T) {
	payload := []byte(`{
		"work_experiences": [
			{"job_title": "Engineer", "employer": "Acme", "start_date": "2020-01-01", "end_date": null}
		]
	}`)
	assert.NoError(t, ValidateResumePayload(payload))
}

func TestValidateResumePayload_MissingRequiredField(t *testing.T) {
	payload := []byte(`{"work_experiences": [{"job_title": "Engineer"}]}`)

	err := ValidateResumePayload(payload)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "employer")
}

func TestValidateResumePayload_UnknownField(t *testing.T) {
	payload := []byte(`{"profile": {"first_name": "Ada", "favorite_color": "mauve"}}`)

	err := ValidateResumePayload(payload)
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumePayload_MalformedJSON(t *testing.T) {
	err := ValidateResumePayload([]byte(`{not json`))
	require.Error(t, err)
}
