package services

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"technostore/internal/domain"
)

// UserDirectory is the fixed username -> credential/role lookup. It is
// populated once at process start and never mutated afterwards; there is
// no signup or role-management flow.
type UserDirectory struct {
	users map[string]*domain.User
}

func NewUserDirectory(users ...*domain.User) *UserDirectory {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &UserDirectory{users: m}
}

// DefaultDirectory returns the stock identities: admin (ADMIN),
// bob (MANAGER) and user (USER).
func DefaultDirectory() *UserDirectory {
	mk := func(username, password string, roles ...string) *domain.User {
		h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		return &domain.User{Username: username, Hash: string(h), Roles: roles}
	}
	return NewUserDirectory(
		mk("admin", "admin", "ADMIN"),
		mk("bob", "bob", "MANAGER"),
		mk("user", "user", "USER"),
	)
}

func (d *UserDirectory) ByUsername(username string) *domain.User {
	return d.users[username]
}

// SessionStore maps sid cookies to directory users. Sessions are
// process-local; durable state lives only in the relational store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string // sid -> username
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

func (s *SessionStore) Bind(sid, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = username
}

func (s *SessionStore) Unbind(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
}

func (s *SessionStore) Username(sid string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.sessions[sid]
	return name, ok
}
