package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgUsernameTaken = "A user with that username already exists."
	msgEmailTaken    = "user with this email already exists."
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	ListUsers(ctx context.Context, page int) (*Page[response.UserResponse], error)
	CreateAdmin(ctx context.Context, username, email, password string) (*entity.User, error)
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

// Register creates a regular (optionally critic) account. Every taken
// unique field is reported, not just the first.
func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	errs := make(utils.FieldErrors)

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		errs.Add("username", msgUsernameTaken)
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		errs.Add("email", msgEmailTaken)
	}

	if len(errs) > 0 {
		s.log.Info("Registration rejected", zap.Strings("fields", fieldNames(errs)))
		return nil, errs
	}

	user, err := s.newUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio
	user.IsCritic = req.IsCritic

	if err := s.repo.User.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if fe, ok := duplicateFieldErrors(err); ok {
			return nil, fe
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.Bool("is_critic", user.IsCritic))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, page int) (*Page[response.UserResponse], error) {
	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	limit, offset, err := pageWindow(page, s.config.App.PageSize, total)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &Page[response.UserResponse]{
		Items:  response.UsersToResponse(users),
		Total:  total,
		Number: page,
		Size:   s.config.App.PageSize,
	}, nil
}

// CreateAdmin provisions a superuser. The username is checked before the
// email, so a clash on both reports ErrUsernameTaken.
func (s *userService) CreateAdmin(ctx context.Context, username, email, password string) (*entity.User, error) {
	existing, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user, err := s.newUser(username, email, password)
	if err != nil {
		return nil, err
	}
	user.IsSuperuser = true

	if err := s.repo.User.Create(ctx, user); err != nil {
		if constraint, ok := repository.AsDuplicate(err); ok {
			if constraint == repository.ConstraintUsersEmail {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Admin created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return user, nil
}

func (s *userService) newUser(username, email, password string) (*entity.User, error) {
	hash, err := utils.HashPassword(password, s.config.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &entity.User{
		Base:         entity.NewBase(now()),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}, nil
}

func duplicateFieldErrors(err error) (utils.FieldErrors, bool) {
	constraint, ok := repository.AsDuplicate(err)
	if !ok {
		return nil, false
	}

	errs := make(utils.FieldErrors)
	switch constraint {
	case repository.ConstraintUsersUsername:
		errs.Add("username", msgUsernameTaken)
	case repository.ConstraintUsersEmail:
		errs.Add("email", msgEmailTaken)
	default:
		return nil, false
	}
	return errs, true
}

func fieldNames(errs utils.FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	return names
}
