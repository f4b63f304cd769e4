package http

import (
	"net/http"

	"github.com/shelfnotes/shelfnotes-server/internal/utils"
	"github.com/shelfnotes/shelfnotes-server/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
