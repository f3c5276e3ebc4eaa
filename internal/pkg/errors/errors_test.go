package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"travel-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", errors.BadRequest("x"), http.StatusBadRequest},
		{"unauthorized", errors.UnauthorizedError("x"), http.StatusUnauthorized},
		{"forbidden", errors.ForbiddenError("x"), http.StatusForbidden},
		{"not found", errors.NotFound("x"), http.StatusNotFound},
		{"conflict", errors.Conflict("x"), http.StatusConflict},
		{"internal", errors.InternalServerError("x"), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.StatusCode(tc.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("tour not found")))
	assert.False(t, errors.IsNotFound(errors.BadRequest("bad")))
	assert.Equal(t, "tour not found", errors.NotFound("tour not found").Error())
}
