package services

import (
	"database/sql"
	"errors"

	"shoppulse/internal/auth"
	"shoppulse/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("admin user with this email already exists")
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Tokens
}

func (s *AuthService) Register(email, password string) error {
	if _, err := s.Users.ByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return s.Users.Insert(email, string(hash))
}

// Login returns a signed bearer token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrBadCreds
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", ErrBadCreds
	}
	return s.Tokens.Issue(u.ID, u.Email)
}
