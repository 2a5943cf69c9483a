package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fullwoodjoz/visitus/internal/middleware"
	"fullwoodjoz/visitus/internal/models/dtos"
	"fullwoodjoz/visitus/internal/services"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			respondWithError(w, http.StatusBadRequest, "Invalid credentials payload")
			return
		}

		result, err := h.deps.Services.Auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				respondWithError(w, http.StatusUnauthorized, "Unknown user or incorrect password")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    result.SessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(7 * 24 * time.Hour),
		})

		resp := dtos.LoginResponse{
			Token:    result.Token,
			Username: result.Username,
			TenantID: result.TenantID,
			Role:     result.Role,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
			h.deps.Services.Auth.Logout(cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		msg := "logged out"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
