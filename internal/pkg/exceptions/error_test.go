package exceptions

import (
	"cataractcare-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Cause", func(t *testing.T) {
		cause := errors.New("connection refused")

		err := ErrMongoDBFindDocument(cause)

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Equal(t, constvars.ErrDevDBFailedToFindDocument+": connection refused", err.DevMessage)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError")
	})

	t.Run("Without Cause", func(t *testing.T) {
		err := ErrPatientNotFound(nil, "101")

		assert.Equal(t, constvars.StatusNotFound, err.StatusCode)
		assert.Equal(t, "patient record 101 not found in record store", err.DevMessage)
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("Found Through Wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("edit: %w", ErrPatientLocked(nil, "7"))

		customErr, ok := AsCustomError(wrapped)

		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}
