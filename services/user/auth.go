package user

import (
	"bookbarn/utils"
)

// IssueToken mints a 7-day access token for a known account. If no account
// holds the email, it returns ("", nil): an explicit refusal rather than an
// error, which the handler turns into a 403 with an empty token body.
//
// There is no revocation; a token stays valid for its full window even if
// the account's role changes or the account is deleted.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.Email == "" {
		return "", nil
	}
	return utils.GenerateToken(usr.Email, utils.TokenValidity)
}
