package http

import (
	"encoding/json"
	"net/http"

	"log-catalog/internal/shared/loggers"
)

// writeJSON writes body with the given status. Encoding errors are logged; the status line is
// already sent by then.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to encode response")
	}
}
