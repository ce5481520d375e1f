package user

import (
	"fmt"

	"bookbarn/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaveUser stores the account, keyed by email. Posting the same email again
// leaves the existing record untouched, so the client can register on every
// social sign-in without clobbering role or verification state.
func (s *DefaultUserService) SaveUser(u models.User) error {
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	switch u.Role {
	case "", models.RoleAdmin, models.RoleSeller, models.RoleBuyer:
	default:
		return fmt.Errorf("unknown role %q", u.Role)
	}
	return s.Repo.Save(&u)
}

// GetUserByEmail returns the account for the given email, or (nil, nil).
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// GetAllUsers returns every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// VerifyUser grants the blue tick to the account with the given hex id.
func (s *DefaultUserService) VerifyUser(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", id, err)
	}
	return s.Repo.SetVerified(oid)
}

// DeleteUser removes the account with the given hex id and returns the
// removed account's email so the caller can drop cached role lookups.
func (s *DefaultUserService) DeleteUser(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("invalid user id %q: %w", id, err)
	}
	removed, err := s.Repo.Delete(oid)
	if err != nil {
		return "", err
	}
	return removed.Email, nil
}
