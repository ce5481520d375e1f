package userRepo

import (
	"errors"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound signals a Delete against an id that holds no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines data access for marketplace accounts.
//
// GetByEmail translates an absent document into (nil, nil) rather than an
// error: callers treat "no such user" as a normal outcome (role probes answer
// false, token issuance refuses).
type UserRepository interface {
	Save(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	SetVerified(id primitive.ObjectID) error
	Delete(id primitive.ObjectID) (*models.User, error)
}
