package response

import (
	"movie-reviews/internal/data/entity"
)

// CriticResponse is the public projection of the review author.
type CriticResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReviewResponse struct {
	ID       string         `json:"id"`
	Stars    int            `json:"stars"`
	Review   string         `json:"review"`
	Spoilers bool           `json:"spoilers"`
	MovieID  string         `json:"movie_id"`
	Critic   CriticResponse `json:"critic"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:       review.ID.String(),
		Stars:    review.Stars,
		Review:   review.Review,
		Spoilers: review.Spoilers,
		MovieID:  review.MovieID.String(),
		Critic:   CriticResponse{ID: review.CriticID.String()},
	}

	if review.Critic != nil {
		resp.Critic.FirstName = review.Critic.FirstName
		resp.Critic.LastName = review.Critic.LastName
	}

	return resp
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewToResponse(review))
	}
	return out
}
