package adaptor

import (
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	movies  usecase.MovieService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, movies usecase.MovieService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		movies:  movies,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/movies/{movie_id}/reviews/
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	movie, err := h.movies.FindMovie(r.Context(), chi.URLParam(r, "movie_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	page, err := utils.ParsePage(r)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), movie, page)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	writePage(w, r, reviews)
}

// CreateReview handles POST /api/movies/{movie_id}/reviews/ (critic or admin).
// The movie is resolved before the body is looked at, so an unknown movie is
// a 404 whatever the payload.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	criticID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, utils.DetailNotAuthenticated)
		return
	}

	movie, err := h.movies.FindMovie(r.Context(), chi.URLParam(r, "movie_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	var req request.CreateReviewRequest
	if !bind(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), criticID, movie, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}
