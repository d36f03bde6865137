package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

// UserResponse never includes the password hash.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Bio         *string   `json:"bio"`
	IsCritic    bool      `json:"is_critic"`
	IsSuperuser bool      `json:"is_superuser"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Bio:         user.Bio,
		IsCritic:    user.IsCritic,
		IsSuperuser: user.IsSuperuser,
		UpdatedAt:   user.UpdatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserToResponse(user))
	}
	return out
}
