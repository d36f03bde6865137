package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, log *zap.Logger) {
	r.Route("/movies/{movie_id}/reviews", func(r chi.Router) {
		r.With(middleware.Require(middleware.AllowAny, log)).Get("/", reviewHandler.ListReviews)
		r.With(middleware.Require(middleware.IsCriticOrAdmin, log)).Post("/", reviewHandler.CreateReview)
	})
}
