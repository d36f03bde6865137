package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	counter middleware.Counter,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/login", func(r chi.Router) {
		r.Use(middleware.RateLimit(counter, "login",
			config.RateLimit.LoginLimit, config.RateLimit.LoginWindow, log))

		r.Post("/", authHandler.Login)           // POST /api/login/
		r.Post("/refresh/", authHandler.Refresh) // POST /api/login/refresh/
	})
}
