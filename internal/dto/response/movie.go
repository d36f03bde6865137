package response

import (
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
)

type MovieResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Duration string          `json:"duration"`
	Premiere string          `json:"premiere"`
	Budget   string          `json:"budget"`
	Overview *string         `json:"overview"`
	Genres   []GenreResponse `json:"genres"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]GenreResponse, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		genres = append(genres, GenreToResponse(genre))
	}

	return MovieResponse{
		ID:       movie.ID.String(),
		Title:    movie.Title,
		Duration: FormatDuration(movie.Duration),
		Premiere: movie.Premiere.Format(time.DateOnly),
		Budget:   movie.Budget.StringFixed(2),
		Overview: movie.Overview,
		Genres:   genres,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MovieToResponse(movie))
	}
	return out
}

// FormatDuration prints "HH:MM:SS", prefixed with the day count when the
// duration is a day or longer, e.g. "1 02:00:00".
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	out := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if micros := int64(d%time.Second) / int64(time.Microsecond); micros > 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	if days > 0 {
		out = fmt.Sprintf("%d %s", days, out)
	}
	return out
}
