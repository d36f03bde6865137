package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, criticID uuid.UUID, movie *entity.Movie, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, movie *entity.Movie, page int) (*Page[response.ReviewResponse], error)
}

type reviewService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, criticID uuid.UUID, movie *entity.Movie, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	critic, err := s.repo.User.FindByID(ctx, criticID)
	if err != nil {
		return nil, fmt.Errorf("find critic %s: %w", criticID, err)
	}
	if critic == nil {
		return nil, fmt.Errorf("critic %s: %w", criticID, utils.ErrNotFound)
	}

	review := &entity.Review{
		BaseSimple: entity.NewBaseSimple(now()),
		Stars:      *req.Stars,
		Review:     req.Review,
		Spoilers:   req.Spoilers,
		MovieID:    movie.ID,
		CriticID:   critic.ID,
		Critic:     critic,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("critic_id", criticID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.Int("stars", review.Stars),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context, movie *entity.Movie, page int) (*Page[response.ReviewResponse], error) {
	total, err := s.repo.Review.CountByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	limit, offset, err := pageWindow(page, s.config.App.PageSize, total)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	criticIDs := make([]uuid.UUID, 0, len(reviews))
	for _, review := range reviews {
		criticIDs = append(criticIDs, review.CriticID)
	}

	critics, err := s.repo.User.FindByIDs(ctx, criticIDs)
	if err != nil {
		return nil, fmt.Errorf("load critics: %w", err)
	}
	for _, review := range reviews {
		review.Critic = critics[review.CriticID]
	}

	return &Page[response.ReviewResponse]{
		Items:  response.ReviewsToResponse(reviews),
		Total:  total,
		Number: page,
		Size:   s.config.App.PageSize,
	}, nil
}
