package adaptor

import (
	"errors"
	"net/http"

	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, service.Movie, log),
	}
}

// bind decodes the body into dst and writes the 400 response itself when
// the body is malformed or invalid.
func bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	fieldErrs, err := utils.BindJSON(r, dst)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return false
	}
	if len(fieldErrs) > 0 {
		utils.ResponseValidation(w, fieldErrs)
		return false
	}
	return true
}

// writePage renders a listing page with absolute next/previous links.
func writePage[T any](w http.ResponseWriter, r *http.Request, page *usecase.Page[T]) {
	next, previous := utils.PageLinks(r, page.Number, page.Size, page.Total)
	utils.ResponseSuccess(w, response.NewPaginatedResponse(page.Items, page.Total, next, previous))
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	if fieldErrs, ok := utils.AsFieldErrors(err); ok {
		log.Info(operation+" rejected", zap.Error(err))
		utils.ResponseValidation(w, fieldErrs)
		return
	}

	switch {
	case errors.Is(err, utils.ErrInvalidPage):
		utils.ResponseNotFound(w, utils.DetailInvalidPage)

	case errors.Is(err, utils.ErrNotFound):
		log.Debug(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, utils.DetailNotFound)

	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, utils.DetailNoActiveAccount)

	case errors.Is(err, utils.ErrInvalidToken):
		log.Debug(operation+" failed - invalid token", zap.Error(err))
		utils.ResponseUnauthorized(w, utils.DetailTokenNotValid)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
