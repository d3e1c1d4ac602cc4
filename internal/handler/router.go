package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/capycare/capycare/backend/internal/auth"
	"github.com/capycare/capycare/backend/internal/controller"
	"github.com/capycare/capycare/backend/internal/handler/authapi"
	"github.com/capycare/capycare/backend/internal/handler/chat"
	"github.com/capycare/capycare/backend/internal/handler/moodapi"
	"github.com/capycare/capycare/backend/internal/handler/sessionapi"
	"github.com/capycare/capycare/backend/internal/handler/supportapi"
	middlewarePkg "github.com/capycare/capycare/backend/internal/middleware"
	"github.com/capycare/capycare/backend/internal/moodlog"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(ctrl *controller.Controller, sessions *session.Repository, moods *moodlog.Log, accounts *auth.Service, tokens *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)
	r.Use(middlewarePkg.Identity(tokens))

	authHandler := authapi.New(accounts, tokens)
	sessionHandler := sessionapi.New(sessions, ctrl)
	chatHandler := chat.New(ctrl)
	moodHandler := moodapi.New(moods)
	supportHandler := supportapi.New()

	r.Route("/api", func(api chi.Router) {
		authHandler.RegisterRoutes(api)
		sessionHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		moodHandler.RegisterRoutes(api)
		supportHandler.RegisterRoutes(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
