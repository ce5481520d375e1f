package user

import (
	userRepo "bookbarn/database/repository/user"
	"bookbarn/models"
)

// ErrUserNotFound re-exported so handlers need not import the repo package.
var ErrUserNotFound = userRepo.ErrUserNotFound

// UserService owns account lifecycle, token issuance and role resolution.
type UserService interface {
	// Accounts
	SaveUser(user models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	VerifyUser(id string) error
	DeleteUser(id string) (string, error)

	// Token issuance. A missing user yields ("", nil): refusal is a normal
	// outcome the caller must check, not an error.
	IssueToken(email string) (string, error)

	// Role resolution. A missing user yields (false, nil).
	IsAdmin(email string) (bool, error)
	IsSeller(email string) (bool, error)
	IsVerified(email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
