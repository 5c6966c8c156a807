package http

import (
	"net/http"

	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.OK("Healthy", nil), http.StatusOK)
}
