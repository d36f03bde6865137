package request

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,max=150,username"`
	Email     string  `json:"email" validate:"required,max=127,email"`
	Password  string  `json:"password" trim:"false" validate:"required"`
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Bio       *string `json:"bio" nullable:"true"`
	IsCritic  bool    `json:"is_critic"`
}
