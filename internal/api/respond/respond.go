package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write response")
	}
}

func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, success{Result: result})
}

func Accepted(w http.ResponseWriter, result any) {
	JSON(w, http.StatusAccepted, success{Result: result})
}

func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
