package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/core/service"
	"github.com/adubrov/boiler-parts/internal/port"
)

type AuthHandler struct {
	users    *service.UserService
	sessions port.SessionStore
}

func NewAuthHandler(users *service.UserService, sessions port.SessionStore) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /users/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, fmt.Errorf("%w: username and password are required", domain.ErrInvalidArgument))
		return
	}

	user, err := h.users.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /users/login: checks the credentials, opens a session
// and hands its id back as a cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	user, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	sessionID, err := h.sessions.Create(r.Context(), user.ID, user.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"userId":   user.ID,
			"username": user.Username,
		},
		"msg": "Logged in!",
	})
}

// LoginCheck handles GET /users/login-check behind the auth guard.
func (h *AuthHandler) LoginCheck(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())

	user, err := h.users.FindByID(r.Context(), session.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Logout handles POST /users/logout: ends the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())

	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, map[string]string{"msg": "session has ended"})
}
