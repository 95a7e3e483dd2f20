package http

import (
	"encoding/json"
	"net/http"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, body models.APIResponse, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response body")
	}
}
