package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-relay/internal/app"
	"github.com/MKhiriev/go-form-relay/internal/utils"
	"github.com/MKhiriev/go-form-relay/models"
)

var healthResponse = models.HealthResponse{
	Status:  "ok",
	Message: app.MsgServerRunning,
	Endpoints: map[string]string{
		"submitForm": "POST /api/data",
	},
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse, http.StatusOK)
}
