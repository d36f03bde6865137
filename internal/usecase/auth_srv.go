package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Login checks the credentials and issues an access/refresh pair. Unknown
// users, wrong passwords and inactive accounts all fail the same way.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", req.Username, err)
	}

	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("username", req.Username))
		return nil, utils.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens for %s: %w", user.ID, err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.TokenPairToResponse(pair)
	return &resp, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error) {
	claims, err := s.tokens.Parse(req.Refresh, utils.RefreshToken)
	if err != nil {
		return nil, err
	}

	userID := claims.UserID
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: user %s is gone or inactive", utils.ErrInvalidToken, userID)
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token for %s: %w", user.ID, err)
	}

	return &response.AccessTokenResponse{Access: access}, nil
}
