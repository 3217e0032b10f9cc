package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestRegisterPatientPayload_Validate(t *testing.T) {
	payload := RegisterPatientPayload{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}
	payload.Normalize()
	assert.NoError(t, payload.Validate())
}

func TestRegisterPatientPayload_Validate_BlankName(t *testing.T) {
	payload := RegisterPatientPayload{
		Name:  "   ",
		Email: "jane@example.com",
	}
	payload.Normalize()

	err := payload.Validate()
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok, "expected a *ValidationError")
	assert.Contains(t, vErr.Fields, "Name")
}

func TestRegisterPatientPayload_Validate_MissingEmail(t *testing.T) {
	payload := RegisterPatientPayload{Name: "Jane Doe"}
	payload.Normalize()

	err := payload.Validate()
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok, "expected a *ValidationError")
	assert.Contains(t, vErr.Fields, "Email")
}

func TestRegisterPatientPayload_Validate_MalformedEmail(t *testing.T) {
	payload := RegisterPatientPayload{
		Name:  "Jane Doe",
		Email: "not-an-email",
	}
	payload.Normalize()

	err := payload.Validate()
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok, "expected a *ValidationError")
	assert.Contains(t, vErr.Fields, "Email")
}

func TestRegisterPatientPayload_Normalize_LowercasesEmail(t *testing.T) {
	payload := RegisterPatientPayload{
		Name:  "  Jane Doe  ",
		Email: "  Jane@Example.COM ",
	}
	payload.Normalize()

	assert.Equal(t, "Jane Doe", payload.Name)
	assert.Equal(t, "jane@example.com", payload.Email)
}

func TestUpdatePatientPayload_Validate_Empty(t *testing.T) {
	payload := UpdatePatientPayload{}
	payload.Normalize()
	assert.NoError(t, payload.Validate())
}

func TestUpdatePatientPayload_Validate_BlankName(t *testing.T) {
	payload := UpdatePatientPayload{Name: strPtr("   ")}
	payload.Normalize()

	err := payload.Validate()
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok, "expected a *ValidationError")
	assert.Contains(t, vErr.Fields, "Name")
}

func TestUpdatePatientPayload_Validate_EmptyOptionalFields(t *testing.T) {
	// Clearing hospital_name or room_number with an explicit empty string is
	// a legitimate update, unlike an absent field.
	payload := UpdatePatientPayload{
		HospitalName: strPtr(""),
		RoomNumber:   strPtr(""),
	}
	payload.Normalize()
	assert.NoError(t, payload.Validate())
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(map[string]string{
		"Name":  "Name is required",
		"Email": "Invalid email format",
	})
	assert.Equal(t, "Email: Invalid email format; Name: Name is required", err.Error())
}
