package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Common errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)

// Validation messages returned to clients
const (
	MsgFieldsRequired = `"{ name, email }" cannot be empty`
	MsgNameTooShort   = "The value of the name property must be greater than 3"
	MsgEmailInvalid   = "The value of the email property must have an @"
)

const minNameLength = 3

// ValidationError reports a malformed request
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Store is the persistence contract the service depends on
type Store interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
}

// Service handles user business logic
type Service struct {
	store Store
}

// NewService creates a new user service with store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ValidateCreate checks a registration request, stopping at the first failure
func ValidateCreate(req *CreateUserRequest) error {
	if req.Name == "" || req.Email == "" {
		return &ValidationError{Message: MsgFieldsRequired}
	}
	if utf8.RuneCountInString(req.Name) < minNameLength {
		return &ValidationError{Message: MsgNameTooShort}
	}
	return validateEmail(req.Email)
}

// ValidateLogin checks a login request
func ValidateLogin(req *LoginUserRequest) error {
	return validateEmail(req.Email)
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return &ValidationError{Message: MsgEmailInvalid}
	}
	return nil
}

// Register validates the request and creates the user if the email is free
func (s *Service) Register(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if err := ValidateCreate(req); err != nil {
		return nil, err
	}

	// Copy so the caller's request is never mutated by the store
	input := *req

	_, err := s.store.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyInUse
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	user, err := s.store.Create(ctx, &input)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// Login validates the request and looks the user up by email.
// No credential is checked.
func (s *Service) Login(ctx context.Context, req *LoginUserRequest) (*User, error) {
	if err := ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return user, nil
}
