//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// errorBody mirrors the envelope produced by httperr.AbortWithError.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		"expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()) {
		return
	}

	if targetStruct == nil {
		return
	}
	err := json.Unmarshal(w.Body.Bytes(), targetStruct)
	assert.NoError(t, err, "failed to decode response JSON: %s", w.Body.String())
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		"expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())

	var body errorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, "failed to decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"error message does not contain expected text")
	}
}
