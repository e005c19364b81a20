package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must contain @")

	assert.Equal(t, "validation failed: email - must contain @", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("user", "")

	assert.Equal(t, "user not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("user", "user with email a@b already exists")

	assert.Equal(t, "user with email a@b already exists", err.Error())
	assert.Equal(t, http.StatusConflict, err.HTTPStatus())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("db write failed", cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatuser_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", NewAlreadyExistsError("user", ""))

	var statuser HTTPStatuser
	require.ErrorAs(t, wrapped, &statuser)
	assert.Equal(t, http.StatusConflict, statuser.HTTPStatus())
}
