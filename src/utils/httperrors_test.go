package utils_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockholdings/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorUsesHTTPErrorCode(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, utils.NotFound("Stock not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Stock not found", body.Message)
}

func TestWriteErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	rec := httptest.NewRecorder()
	utils.WriteError(rec, utils.InternalServerError("Error adding stock", cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "Error adding stock")
}

func TestWriteErrorDefaultsToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHTTPErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := fmt.Errorf("wrapped: %w", utils.InternalServerError("Error deleting stock", sentinel))

	assert.ErrorIs(t, err, sentinel)
	httpErr := utils.AsHTTPError(err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, "Error deleting stock", httpErr.Message)
}
