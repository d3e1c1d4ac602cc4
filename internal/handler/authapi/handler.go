// Package authapi exposes signup/signin over HTTP.
package authapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/auth"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// Handler serves the auth routes.
type Handler struct {
	accounts *auth.Service
	tokens   *auth.TokenManager
}

// New creates the auth handler.
func New(accounts *auth.Service, tokens *auth.TokenManager) *Handler {
	return &Handler{accounts: accounts, tokens: tokens}
}

// RegisterRoutes mounts the auth endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/signup", h.handleSignUp)
	r.Post("/auth/signin", h.handleSignIn)
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.accounts.SignUp(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			utils.RespondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrEmailRequired), errors.Is(err, auth.ErrWeakPassword):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.accounts.SignIn(payload.Email, payload.Password)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, status int, user auth.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	utils.RespondJSON(w, status, tokenResponse{Token: token, User: user})
}
