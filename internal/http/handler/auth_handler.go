package handler

import (
	"fmt"
	"net/http"

	"valorant-coach-service/internal/http/middleware"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/observability"
	"valorant-coach-service/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !decodeBody(w, r, &in) {
		observability.RecordAuthRegister("invalid_body")
		return
	}
	user, err := h.auth.Register(in)
	if err != nil {
		observability.RecordAuthRegister("failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordAuthRegister("success")
	observability.Audit(r, "auth.register", "user_id", user.ID, "username", user.Username)
	response.JSON(w, r, http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decodeBody(w, r, &in) {
		observability.RecordAuthLogin("invalid_body")
		return
	}
	pair, err := h.auth.Login(in.Username, in.Password)
	if err != nil {
		observability.RecordAuthLogin("failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordAuthLogin("success")
	observability.Audit(r, "auth.login", "user_id", pair.UserID, "username", pair.Username)
	response.JSON(w, r, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if !decodeBody(w, r, &in) {
		observability.RecordAuthRefresh("invalid_body")
		return
	}
	pair, err := h.auth.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		observability.RecordAuthRefresh("failure")
		writeServiceError(w, r, err)
		return
	}
	observability.RecordAuthRefresh("success")
	observability.Audit(r, "auth.refresh", "user_id", pair.UserID)
	response.JSON(w, r, http.StatusOK, pair)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
		return
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		h.auth.Logout(r.Context(), claims)
	}
	observability.RecordAuthLogout("success")
	observability.Audit(r, "auth.logout", "user_id", user.ID, "username", user.Username)
	response.JSON(w, r, http.StatusOK, map[string]string{
		"detail": fmt.Sprintf("User %s logged out", user.Username),
	})
}
