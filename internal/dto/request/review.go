package request

type CreateReviewRequest struct {
	Stars    *int   `json:"stars" validate:"required,min=1,max=5"`
	Review   string `json:"review" validate:"required"`
	Spoilers bool   `json:"spoilers"`
}
