package validator_test

import (
	"strings"
	"testing"

	"choreboard/shared/failure"
	"choreboard/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type householdRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=10"`
	Email    string `json:"email"    validate:"required,email"`
	Members  int    `json:"members"  validate:"gte=1,lte=12"`
	Category string `json:"category" validate:"oneof=house flat"`
}

type trimmed struct {
	Label string `json:"label" validate:"required,max=5"`
}

func (t *trimmed) Normalize() {
	t.Label = strings.TrimSpace(t.Label)
}

func validRequest() householdRequest {
	return householdRequest{Name: "Home", Email: "home@example.com", Members: 3, Category: "house"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*householdRequest)
		message string
	}{
		{name: "valid"},
		{name: "missing name", mutate: func(r *householdRequest) { r.Name = "" }, message: "name is required"},
		{name: "blank name", mutate: func(r *householdRequest) { r.Name = "   " }, message: "name cannot be blank"},
		{name: "long name", mutate: func(r *householdRequest) { r.Name = "a very long household" }, message: "name must be at most 10 characters"},
		{name: "bad email", mutate: func(r *householdRequest) { r.Email = "nope" }, message: "email must be a valid email address"},
		{name: "too many members", mutate: func(r *householdRequest) { r.Members = 20 }, message: "members must be less than or equal to 12"},
		{name: "bad category", mutate: func(r *householdRequest) { r.Category = "castle" }, message: "category must be one of house flat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			err := validator.ValidateStruct(&req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestCollectReturnsEveryMessage(t *testing.T) {
	req := householdRequest{Members: 0, Category: "castle", Email: "x"}

	errs := validator.Collect(&req)

	assert.ElementsMatch(t, validator.Errors{
		"name is required",
		"email must be a valid email address",
		"members must be greater than or equal to 1",
		"category must be one of house flat",
	}, errs)
}

func TestCollectNormalizesFirst(t *testing.T) {
	req := trimmed{Label: "  abc  "}

	assert.Nil(t, validator.Collect(&req))
	assert.Equal(t, "abc", req.Label)
}

func TestRegisterMessagesOverridesGeneric(t *testing.T) {
	validator.RegisterMessages(map[string]string{"label.max": "Label is too long."})

	errs := validator.Collect(&trimmed{Label: "abcdefgh"})

	assert.Equal(t, validator.Errors{"Label is too long."}, errs)
	assert.Equal(t, "Label is too long.", errs.Error())
}

func TestValidate(t *testing.T) {
	var req householdRequest

	err := validator.Validate(strings.NewReader(`{"name":"Home","email":"home@example.com","members":2,"category":"flat"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "Home", req.Name)

	err = validator.Validate(strings.NewReader(`{"name":`), &req)
	assert.ErrorContains(t, err, "failed to decode request body")

	err = validator.Validate(strings.NewReader(``), &req)
	assert.EqualError(t, err, "request body cannot be empty")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2024-01-01", "datetime=2006-01-02"))
	assert.Error(t, validator.ValidateVar("01/01/2024", "datetime=2006-01-02"))
	assert.NoError(t, validator.ValidateVar("12", "number"))
	assert.Error(t, validator.ValidateVar("-1", "number"))
	assert.NoError(t, validator.ValidateVar("9223372036854775807", "int64"))
	assert.Error(t, validator.ValidateVar("9223372036854775808", "number,int64"))
}
