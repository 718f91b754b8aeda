package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"cafeteria/internal/api"
	"cafeteria/internal/models"
	"cafeteria/internal/session"
)

// AuthService is the client side of registration and login. On a successful
// login the returned identity is saved through the session gate, which then
// decides the landing route.
type AuthService struct {
	backend  api.Backend
	gate     *session.Gate
	validate *validator.Validate
}

// NewAuthService creates an AuthService.
func NewAuthService(backend api.Backend, gate *session.Gate) *AuthService {
	return &AuthService{
		backend:  backend,
		gate:     gate,
		validate: validator.New(),
	}
}

// Register creates an account. The user struct is validated locally first so
// obviously bad input never leaves the client.
func (s *AuthService) Register(ctx context.Context, user models.User) error {
	if err := s.validate.Struct(user); err != nil {
		return fmt.Errorf("invalid registration: %w", err)
	}
	if err := s.backend.Register(ctx, user); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Login authenticates, stores the session, and returns the route the caller
// should land on for their role.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if err := s.gate.SaveLogin(result); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return s.gate.Landing(), nil
}

// Logout forgets the stored session.
func (s *AuthService) Logout() error {
	return s.gate.Clear()
}
