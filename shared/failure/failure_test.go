package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"choreboard/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"bad request", failure.BadRequest(errors.New("validation failed")), http.StatusBadRequest, "validation failed"},
		{"bad request from string", failure.BadRequestFromString("update request cannot be empty"), http.StatusBadRequest, "update request cannot be empty"},
		{"unauthorized", failure.Unauthorized("You're not authorized to edit this chore."), http.StatusUnauthorized, "You're not authorized to edit this chore."},
		{"internal", failure.InternalError(errors.New("db down")), http.StatusInternalServerError, "db down"},
		{"unimplemented", failure.Unimplemented("Export"), http.StatusNotImplemented, "Export"},
		{"not found", failure.NotFound("Chore not found."), http.StatusNotFound, "Chore not found."},
		{"conflict", failure.Conflict("email already registered"), http.StatusConflict, "email already registered"},
		{"forbidden", failure.Forbidden("admins only"), http.StatusForbidden, "admins only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fail, ok := failure.As(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, fail.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestUnauthorizedCarriesTitle(t *testing.T) {
	fail, ok := failure.As(failure.Unauthorized("nope"))
	require.True(t, ok)
	assert.Equal(t, "Unauthorized", fail.Title)
}

func TestWithTitleAndErrors(t *testing.T) {
	base := &failure.Failure{Code: http.StatusNotFound, Message: "Chore not found"}

	detailed := base.WithTitle("Chore not found.").WithErrors("Chore with id of 7 could not be found.")

	assert.Equal(t, "Chore not found.", detailed.Title)
	assert.Equal(t, []string{"Chore with id of 7 could not be found."}, detailed.Errors)
	assert.Empty(t, base.Title, "original failure must not be mutated")
	assert.Nil(t, base.Errors)
}

func TestValidation(t *testing.T) {
	fail, ok := failure.As(failure.Validation([]string{"Chore Name cannot be empty.", "Chore value cannot be empty."}))
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, fail.Code)
	assert.Equal(t, "Chore Name cannot be empty.", fail.Message)
	assert.Len(t, fail.Errors, 2)
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.Equal(t, http.StatusForbidden, failure.ResourceRestrictedError.Code)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure", failure.NotFound("x"), http.StatusNotFound},
		{"wrapped failure", fmt.Errorf("failed to get chore: %w", failure.Unauthorized("x")), http.StatusUnauthorized},
		{"plain error is unhandled", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
