package handler

import (
	"net/http"

	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/service"
)

type MatchHandler struct {
	matches *service.MatchService
}

func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	var in service.CreateMatchInput
	if !decodeBody(w, r, &in) {
		return
	}
	match, err := h.matches.Create(owner, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, match)
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	matches, err := h.matches.List(owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, matches)
}
