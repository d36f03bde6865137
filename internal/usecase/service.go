package usecase

import (
	"time"

	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, tokens *utils.TokenIssuer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		User:   NewUserService(repo, config, log),
		Movie:  NewMovieService(repo, config, log),
		Review: NewReviewService(repo, config, log),
	}
}

// Page is one page of a listing together with the size of the whole listing.
type Page[T any] struct {
	Items  []T
	Total  int64
	Number int
	Size   int
}

// pageWindow validates the page number against total and returns the
// limit/offset to query with.
func pageWindow(page, size int, total int64) (limit, offset int, err error) {
	if err := utils.CheckPage(page, size, total); err != nil {
		return 0, 0, err
	}
	return size, utils.CalculateOffset(page, size), nil
}

// now is replaced in tests that need stable timestamps.
var now = func() time.Time { return time.Now().UTC() }
