package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	FirstName    string  `db:"first_name"`
	LastName     string  `db:"last_name"`
	Bio          *string `db:"bio"`
	IsCritic     bool    `db:"is_critic"`
	IsSuperuser  bool    `db:"is_superuser"`
	IsActive     bool    `db:"is_active"`
}
