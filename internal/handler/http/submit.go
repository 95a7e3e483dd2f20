package http

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/models"
)

func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read request body")
		writeJSON(w, r, models.ErrResponse("invalid request body"), http.StatusBadRequest)
		return
	}

	var payload models.AnswerPayload
	if err = json.Unmarshal(rawBody, &payload); err != nil {
		log.Err(err).Msg("malformed answer payload")
		writeJSON(w, r, models.ErrResponse("invalid payload"), http.StatusBadRequest)
		return
	}

	if err = h.authorizeSubmission(r, rawBody, payload.DeviceID); err != nil {
		log.Err(err).Str("device_id", payload.DeviceID).Msg("submission rejected")
		writeJSON(w, r, models.ErrResponse(messageFromError(err)), statusFromError(err))
		return
	}

	deduplicated, err := h.services.Submission.Submit(ctx, payload)
	if err != nil {
		log.Err(err).Str("device_id", payload.DeviceID).Msg("submission failed")
		writeJSON(w, r, models.ErrResponse(messageFromError(err)), statusFromError(err))
		return
	}

	if deduplicated {
		log.Info().Str("device_id", payload.DeviceID).Msg("duplicate submission deduplicated")
		writeJSON(w, r, models.DeduplicatedResponse("already delivered"), http.StatusOK)
		return
	}

	log.Info().Str("device_id", payload.DeviceID).Msg("submission delivered")
	writeJSON(w, r, models.OkResponse("answers submitted"), http.StatusOK)
}

// authorizeSubmission picks the authentication strategy. Signed headers
// win whenever a signature is present; the shared-secret token is a
// transitional path for devices that have not registered a key yet.
func (h *Handler) authorizeSubmission(r *http.Request, rawBody []byte, payloadDeviceID string) error {
	if r.Header.Get(headerSignature) != "" {
		return h.services.AuthGate.AuthorizeSubmission(r.Context(), signedHeaders(r), rawBody, payloadDeviceID)
	}

	return h.authorizeLegacyToken(r)
}

func (h *Handler) authorizeLegacyToken(r *http.Request) error {
	log := logger.FromRequest(r)

	token := r.Header.Get(headerAppToken)
	if token == "" || (h.appTokenCurrent == "" && h.appTokenNext == "") {
		return errMissingCredentials
	}

	// both halves of the rotation pair are accepted so clients can be
	// migrated to a new token without a coordinated cut-over
	if !tokenEqual(token, h.appTokenCurrent) && !tokenEqual(token, h.appTokenNext) {
		return errInvalidAppToken
	}

	log.Warn().Str("auth_version", r.Header.Get(headerAuthVersion)).Msg("request authorized via deprecated shared-secret token")
	return nil
}

func tokenEqual(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
