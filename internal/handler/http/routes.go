package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-relay/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.health)
	router.Get("/api/data", h.health)
	router.Post("/api/data", h.submitForm)
	router.Get("/api/version/", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
