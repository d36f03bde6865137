package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=127"`
}

type MovieRequest struct {
	Title    string         `json:"title" validate:"required,max=127"`
	Duration *Duration      `json:"duration" validate:"required"`
	Premiere *Date          `json:"premiere" validate:"required"`
	Budget   *Amount        `json:"budget" validate:"required"`
	Overview *string        `json:"overview" nullable:"true"`
	Genres   []GenreRequest `json:"genres" validate:"required,min=1,dive"`
}
