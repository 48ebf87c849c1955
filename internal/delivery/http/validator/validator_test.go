package validator

import (
	"testing"

	domainerrors "testament/internal/domain/errors"
	"testament/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	messages := make(map[string]string)
	for _, field := range validationErr.Fields() {
		messages[field.Field] = field.Message
	}

	return messages
}

func TestValidator_ValidInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.StartRegistrationInput{
		FullName: "Ama Mensah",
		Email:    "ama@example.com",
	})

	assert.NoError(t, err)
}

func TestValidator_MissingRequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.StartRegistrationInput{})

	require.Error(t, err)
	messages := fieldMessages(t, err)
	assert.Equal(t, "is required", messages["fullname"])
	assert.Equal(t, "is required", messages["email"])
}

func TestValidator_BadEmail(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.StartRegistrationInput{
		FullName: "Ama Mensah",
		Email:    "not-an-email",
	})

	require.Error(t, err)
	messages := fieldMessages(t, err)
	assert.Equal(t, "must be a valid email address", messages["email"])
}

func TestValidator_AllocationPercentageBounds(t *testing.T) {
	v := New()

	tooSmall := usecase.UpdateAllocationInput{Percentage: ptr(0.001)}
	err := v.Validate(&tooSmall)
	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err)["percentage"], "at least")

	tooLarge := usecase.UpdateAllocationInput{Percentage: ptr(100.5)}
	err = v.Validate(&tooLarge)
	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err)["percentage"], "at most")

	boundary := usecase.UpdateAllocationInput{Percentage: ptr(100.0)}
	assert.NoError(t, v.Validate(&boundary))
}

func TestValidator_OTPCodeShape(t *testing.T) {
	v := New()

	input := usecase.VerifySponsoredOTPInput{
		Email:    "kofi@example.com",
		Code:     "12345",
		FullName: "Kofi Boateng",
	}
	err := v.Validate(&input)
	require.Error(t, err)
	assert.Equal(t, "must be exactly 6 characters", fieldMessages(t, err)["code"])

	input.Code = "abcdef"
	err = v.Validate(&input)
	require.Error(t, err)
	assert.Equal(t, "must contain only digits", fieldMessages(t, err)["code"])

	input.Code = "123456"
	assert.NoError(t, v.Validate(&input))
}

func TestValidator_AssetTypeOneOf(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AddAssetInput{
		AssetType:   "yacht-collection",
		Description: "fleet",
	})

	require.Error(t, err)
	assert.Contains(t, fieldMessages(t, err)["assettype"], "must be one of")
}

func ptr[T any](v T) *T {
	return &v
}
