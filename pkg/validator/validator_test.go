package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Website string `validate:"omitempty,url"`
	Bio     string `validate:"omitempty,max=10"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Name:  "Clinica Central",
		Email: "contato@clinica.com",
	})

	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Email:   "not-an-email",
		Website: "not-a-url",
		Bio:     "this is far too long",
	})
	require.Error(t, err)

	messages := cv.FormatValidationErrors(err)

	assert.Equal(t, "Name is required", messages["Name"])
	assert.Equal(t, "Email must be a valid email address", messages["Email"])
	assert.Equal(t, "Website must be a valid URL", messages["Website"])
	assert.Equal(t, "Bio must be at most 10 characters", messages["Bio"])
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	cv := NewValidator()

	messages := cv.FormatValidationErrors(assert.AnError)

	assert.Empty(t, messages)
}
