package user

import (
	"bookbarn/models"
)

// Role probes answer from the stored document, not the token, so a role
// change takes effect on the next check at the cost of one store lookup.
// A nonexistent email answers false, never an error.

// IsAdmin reports whether the email belongs to an admin account.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	return s.hasRole(email, models.RoleAdmin)
}

// IsSeller reports whether the email belongs to a seller account.
func (s *DefaultUserService) IsSeller(email string) (bool, error) {
	return s.hasRole(email, models.RoleSeller)
}

// IsVerified reports whether the account carries the blue tick.
func (s *DefaultUserService) IsVerified(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if usr == nil {
		return false, nil
	}
	return usr.Verified, nil
}

func (s *DefaultUserService) hasRole(email, role string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if usr == nil {
		return false, nil
	}
	return usr.Role == role, nil
}
