package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, log *zap.Logger) {
	r.Route("/movies", func(r chi.Router) {
		// public listing
		r.With(middleware.Require(middleware.AllowAny, log)).Get("/", movieHandler.ListMovies)

		// admin only
		r.With(middleware.Require(middleware.IsAdmin, log)).Post("/", movieHandler.CreateMovie)
	})
}
