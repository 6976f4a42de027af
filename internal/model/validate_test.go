package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsPartialDocument(t *testing.T) {
	err := Validate([]byte(`{"fullName": "Jane Doe", "skills": ["Go"]}`))
	assert.NoError(t, err)
}

func TestValidate_RejectsWrongTypes(t *testing.T) {
	err := Validate([]byte(`{"fullName": 42}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "fullName")
}

func TestValidate_RejectsUnknownProperties(t *testing.T) {
	err := Validate([]byte(`{"experience": [{"id": "1", "salary": "lots"}]}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDecode_Normalizes(t *testing.T) {
	r, err := Decode([]byte(`{
		"fullName": "Jane Doe",
		"experience": [{"id": "1", "company": "Acme"}, {"id": "1", "company": "Globex"}],
		"skills": ["Go", "Go"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", r.FullName)
	assert.Equal(t, []string{"Go"}, r.Skills)
	require.Len(t, r.Experience, 2)
	assert.NotEqual(t, r.Experience[0].ID, r.Experience[1].ID)
	assert.NotNil(t, r.Education)
}
