package request

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" trim:"false" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}
