package handler

import (
	"net/http"

	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/service"
)

type PracticeSessionHandler struct {
	sessions *service.PracticeSessionService
}

func NewPracticeSessionHandler(sessions *service.PracticeSessionService) *PracticeSessionHandler {
	return &PracticeSessionHandler{sessions: sessions}
}

func (h *PracticeSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	var in service.CreatePracticeSessionInput
	if !decodeBody(w, r, &in) {
		return
	}
	session, err := h.sessions.Create(owner, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, session)
}

func (h *PracticeSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	sessions, err := h.sessions.List(owner)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, sessions)
}
