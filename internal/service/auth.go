package service

import (
	"context"
	"errors"

	"todo_backend/internal/domain"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an active user with a hashed password. The raw password
// is never stored; a duplicate username surfaces as domain.ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           in.Role,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks the credentials against the store. Unknown username
// and wrong password produce the same outcome so callers cannot enumerate
// accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	if !s.hasher.Verify(password, u.HashedPassword) {
		return nil, domain.ErrNotAuthenticated
	}
	return u, nil
}

// Login authenticates and mints an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Token, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.Issue(u.Username, u.ID)
	if err != nil {
		return nil, err
	}

	return &Token{AccessToken: access, TokenType: "bearer"}, nil
}
