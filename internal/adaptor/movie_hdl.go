package adaptor

import (
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /api/movies/
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	page, err := utils.ParsePage(r)
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	movies, err := h.service.ListMovies(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	writePage(w, r, movies)
}

// CreateMovie handles POST /api/movies/ (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, utils.DetailNotAuthenticated)
		return
	}

	var req request.MovieRequest
	if !bind(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}
