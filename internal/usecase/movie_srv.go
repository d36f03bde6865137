package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	ListMovies(ctx context.Context, page int) (*Page[response.MovieResponse], error)
	FindMovie(ctx context.Context, movieID string) (*entity.Movie, error)
}

type movieService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewMovieService(repo *repository.Repository, config *utils.Config, log *zap.Logger) MovieService {
	return &movieService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "movie")),
	}
}

// CreateMovie stores the movie and links it to its genres, creating genres
// that do not exist yet. Everything is written in one transaction.
func (s *movieService) CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	createdAt := now()
	movie := &entity.Movie{
		Base:     entity.NewBase(createdAt),
		Title:    req.Title,
		Duration: time.Duration(*req.Duration).Truncate(time.Second),
		Premiere: req.Premiere.Time,
		Budget:   req.Budget.Decimal,
		Overview: req.Overview,
		UserID:   userID,
	}

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Movie.Create(ctx, movie); err != nil {
			return err
		}

		seen := make(map[string]bool, len(req.Genres))
		links := make([]*entity.MovieGenre, 0, len(req.Genres))
		for _, g := range req.Genres {
			if seen[g.Name] {
				continue
			}
			seen[g.Name] = true

			genre, err := s.repo.Genre.FindOrCreate(ctx, g.Name)
			if err != nil {
				return err
			}
			movie.Genres = append(movie.Genres, genre)
			links = append(links, &entity.MovieGenre{
				BaseSimple: entity.NewBaseSimple(createdAt),
				MovieID:    movie.ID,
				GenreID:    genre.ID,
			})
		}

		return s.repo.MovieGenre.CreateBatch(ctx, links)
	})
	if err != nil {
		return nil, fmt.Errorf("create movie %q: %w", req.Title, err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genres", len(movie.Genres)),
		zap.String("user_id", userID.String()))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) ListMovies(ctx context.Context, page int) (*Page[response.MovieResponse], error) {
	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	limit, offset, err := pageWindow(page, s.config.App.PageSize, total)
	if err != nil {
		return nil, err
	}

	movies, err := s.repo.Movie.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.ID)
	}

	genres, err := s.repo.Genre.FindByMovieIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load movie genres: %w", err)
	}
	for _, movie := range movies {
		movie.Genres = genres[movie.ID]
	}

	return &Page[response.MovieResponse]{
		Items:  response.MoviesToResponse(movies),
		Total:  total,
		Number: page,
		Size:   s.config.App.PageSize,
	}, nil
}

// FindMovie returns utils.ErrNotFound for unknown ids and for ids that are
// not UUIDs at all.
func (s *movieService) FindMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", movieID, utils.ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", id, utils.ErrNotFound)
	}

	return movie, nil
}
