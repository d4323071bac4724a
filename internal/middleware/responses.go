package middleware

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError renders an error as JSON for htmx requests and plain text
// otherwise. The request id is echoed in the JSON body so a failed fragment
// swap can be matched to its log entry.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		resp := errorResponse{Error: msg}
		if rid, ok := RequestID(r.Context()); ok {
			resp.RequestID = rid
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	http.Error(w, msg, code)
}
