package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"technostore/internal/domain"
)

var ErrBadCreds = errors.New("invalid username or password")

type AuthService struct {
	Users    *UserDirectory
	Sessions *SessionStore
}

func NewAuthService(users *UserDirectory) *AuthService {
	return &AuthService{Users: users, Sessions: NewSessionStore()}
}

func (s *AuthService) Login(sid, username, password string) (*domain.User, error) {
	u := s.Users.ByUsername(username)
	if u == nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	s.Sessions.Bind(sid, u.Username)
	return u, nil
}

func (s *AuthService) Logout(sid string) {
	s.Sessions.Unbind(sid)
}

// CurrentUser resolves the sid cookie to a directory user, or nil when
// the session is unknown.
func (s *AuthService) CurrentUser(sid string) *domain.User {
	name, ok := s.Sessions.Username(sid)
	if !ok {
		return nil
	}
	return s.Users.ByUsername(name)
}
