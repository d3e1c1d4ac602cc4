// Package auth provides the minimal local identity layer: email and
// password accounts with bcrypt hashes in the durable store, plus JWT
// access tokens. Its only real job is giving every request a user
// namespace; unauthenticated requests fall back to the anonymous one.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/capycare/capycare/backend/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailRequired      = errors.New("email is required")
)

const (
	accountsNamespace = "auth"
	accountsKey       = "accounts"

	minPasswordLength = 6
)

// User is the public identity handed to clients and embedded in tokens.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Service manages accounts.
type Service struct {
	mu    sync.Mutex
	store store.Store
}

// NewService returns a Service backed by s.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) load() map[string]account {
	accounts := make(map[string]account)
	_, _ = s.store.Get(store.Key(accountsNamespace, accountsKey), &accounts)
	return accounts
}

// SignUp registers a new account and returns its identity.
func (s *Service) SignUp(email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, ErrEmailRequired
	}
	if len(password) < minPasswordLength {
		return User{}, ErrWeakPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.load()
	if _, exists := accounts[email]; exists {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	acct := account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	accounts[email] = acct
	if err := s.store.Put(store.Key(accountsNamespace, accountsKey), accounts); err != nil {
		return User{}, err
	}

	return User{ID: acct.ID, Email: acct.Email}, nil
}

// SignIn verifies the credentials and returns the identity.
func (s *Service) SignIn(email, password string) (User, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	acct, exists := s.load()[email]
	s.mu.Unlock()

	if !exists {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return User{ID: acct.ID, Email: acct.Email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
