package domain

import "time"

type Role string

const (
	RoleSeeker   Role = "user"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	FindByID(id int64) (*User, error)
	FindByEmail(email string) (*User, error)
	Create(user *User) error
	// Delete removes the user together with the employer record, jobs,
	// applications and profile that hang off it, in one transaction.
	Delete(id int64) error
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthService interface {
	Register(input RegisterInput) (*User, error)
	Login(email, password string) (token string, user *User, err error)
	CurrentUser(token string) (*User, error)
}
