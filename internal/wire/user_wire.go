package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	r.Route("/users", func(r chi.Router) {
		r.With(middleware.Require(middleware.IsAdmin, log)).Get("/", userHandler.ListUsers)
		r.With(middleware.Require(middleware.AllowAny, log)).Post("/", userHandler.Register)
	})
}
