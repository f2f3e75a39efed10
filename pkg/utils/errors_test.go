package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	plain := NewBadRequestError("Invalid request format")
	assert.Equal(t, "Invalid request format", plain.Error())

	detailed := NewValidationError("user_id is required")
	assert.Equal(t, "Validation failed: user_id is required", detailed.Error())
}

func TestErrorConstructorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *CustomError
		expected int
	}{
		{"bad request", NewBadRequestError("m"), http.StatusBadRequest},
		{"internal", NewInternalServerError("m"), http.StatusInternalServerError},
		{"not found", NewNotFoundError("m"), http.StatusNotFound},
		{"validation", NewValidationError("d"), http.StatusBadRequest},
		{"extraction", NewExtractionError("d"), http.StatusUnprocessableEntity},
		{"rate limit", NewRateLimitError("d"), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Code)
		})
	}
}
