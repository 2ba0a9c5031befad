package handler

import (
	"net/http"

	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/service"
)

type StrategyHandler struct {
	strategies *service.StrategyService
}

func NewStrategyHandler(strategies *service.StrategyService) *StrategyHandler {
	return &StrategyHandler{strategies: strategies}
}

func (h *StrategyHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	var in service.CreateStrategyInput
	if !decodeBody(w, r, &in) {
		return
	}
	strategy, err := h.strategies.Create(owner, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, strategy)
}

func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	strategies, err := h.strategies.List(owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, strategies)
}
