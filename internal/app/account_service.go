// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"healthlog/internal/domain"
)

// AccountService composes the user store with credential hashing to
// implement registration and login.
type AccountService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewAccountService creates an AccountService backed by the given repository.
// A cost of 0 falls back to bcrypt.DefaultCost.
func NewAccountService(users domain.UserRepository, bcryptCost int) *AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account. The raw password is hashed before it
// reaches the store; a taken email surfaces as domain.ErrDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, name, email, password string, age *int, height *float64) (*domain.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}
	if age != nil && *age < 0 {
		return nil, errors.New("age must be >= 0")
	}
	if height != nil && *height < 0 {
		return nil, errors.New("height must be >= 0")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, email, name, string(hash), age, height)
}

// Login verifies an email/password pair. An unknown email and a wrong
// password both return domain.ErrInvalidCredentials; the comparison is
// bcrypt's own, never an equality check on hashes.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAccount returns the account for an externally verified email,
// provisioning one on first sight. The generated credential is random and
// never revealed, so such accounts can only sign in through the provider.
func (s *AccountService) EnsureAccount(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword(buf, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user, err = s.users.CreateUser(ctx, email, name, string(hash), nil, nil)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		// Lost a provisioning race; the account exists now.
		return s.users.GetByEmail(ctx, email)
	}
	return user, err
}

// Delete removes an account. The store cascades the delete to all of the
// user's measurement rows.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.users.DeleteUser(ctx, id)
}

// List returns all accounts without their credential hashes.
func (s *AccountService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}
