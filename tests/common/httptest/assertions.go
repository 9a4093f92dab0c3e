//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx JSON body into
// target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the shared {"error":{"message":...}} body. An
// empty expectedMsg only checks that a message is present.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode error JSON: %s", w.Body.String()) {
		return
	}
	if expectedMsg == "" {
		assert.NotEmpty(t, body.Error.Message)
		return
	}
	assert.Contains(t, body.Error.Message, expectedMsg)
}
