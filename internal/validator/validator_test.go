package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Status string `json:"status" validate:"omitempty,is-job-status"`
	Level  string `json:"level" validate:"omitempty,is-job-level"`
	JobID  string `json:"jobId" validate:"omitempty,is-object-id"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{
		Email:  "user@example.com",
		Role:   "recruiter",
		Status: "active",
		Level:  "Senior",
		JobID:  "507f1f77bcf86cd799439011",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Role: "recruiter"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email", "field keys come from json tags")
	assert.Equal(t, "This field is required", verr.Errors["email"])
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		req   sampleRequest
		field string
	}{
		{"bad role", sampleRequest{Email: "a@b.com", Role: "superuser"}, "role"},
		{"bad status", sampleRequest{Email: "a@b.com", Role: "jobseeker", Status: "open"}, "status"},
		{"lowercase level", sampleRequest{Email: "a@b.com", Role: "jobseeker", Level: "senior"}, "level"},
		{"short id", sampleRequest{Email: "a@b.com", Role: "jobseeker", JobID: "abc123"}, "jobId"},
		{"non-hex id", sampleRequest{Email: "a@b.com", Role: "jobseeker", JobID: "zzzzzzzzzzzzzzzzzzzzzzzz"}, "jobId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			require.Error(t, err)
			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, verr.Errors, tt.field)
		})
	}
}

func TestValidate_OmitemptySkipsAbsentValues(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "a@b.com", Role: "jobseeker"})
	assert.NoError(t, err, "empty optional fields pass; required handles presence")
}
