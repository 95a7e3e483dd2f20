package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/models"
)

func (h *Handler) registerDeviceKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// the signature covers the exact transmitted bytes, so the body is
	// kept raw and parsed separately
	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read request body")
		writeJSON(w, r, models.ErrResponse("invalid request body"), http.StatusBadRequest)
		return
	}

	var registration models.DeviceKeyRegistration
	if err = json.Unmarshal(rawBody, &registration); err != nil {
		log.Err(err).Msg("malformed registration payload")
		writeJSON(w, r, models.ErrResponse("invalid payload"), http.StatusBadRequest)
		return
	}

	if err = h.services.AuthGate.AuthorizeRegistration(ctx, signedHeaders(r), rawBody, registration); err != nil {
		log.Err(err).Str("device_id", registration.DeviceID).Msg("device key registration rejected")
		writeJSON(w, r, models.ErrResponse(messageFromError(err)), statusFromError(err))
		return
	}

	log.Info().Str("device_id", registration.DeviceID).Msg("device key registration accepted")
	writeJSON(w, r, models.OkResponse("device key registered"), http.StatusOK)
}
