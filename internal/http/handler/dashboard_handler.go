package handler

import (
	"net/http"

	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	dash, err := h.dashboard.Aggregate(owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dash)
}
