package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()

	OK(w, map[string]string{"status": "pending"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"result":{"status":"pending"}}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()

	Fail(w, http.StatusNotFound, errors.New("scheduled notification not found"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "scheduled notification not found", body["error"])
}
