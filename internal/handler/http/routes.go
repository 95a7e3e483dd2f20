package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// rate limit before auth so abusive devices cannot burn signature
	// verification; keyed by asserted device id, falling back to IP
	if h.rateLimitPerMinute > 0 {
		router.Use(httprate.Limit(
			h.rateLimitPerMinute,
			1*time.Minute,
			httprate.WithKeyFuncs(keyByDeviceID),
		))
	}

	router.Post("/register-device-key", h.registerDeviceKey)
	router.Post("/submit-answers", h.submitAnswers)

	return router
}

func keyByDeviceID(r *http.Request) (string, error) {
	if id := r.Header.Get(headerDeviceID); id != "" {
		return id, nil
	}
	return httprate.KeyByIP(r)
}
