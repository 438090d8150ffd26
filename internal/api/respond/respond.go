// Package respond writes JSON HTTP responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type errorBody struct {
	Error string `json:"error"`
}

type resultBody struct {
	Result any `json:"result"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, resultBody{Result: result})
}

func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, resultBody{Result: result})
}

func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, errorBody{Error: err.Error()})
}
