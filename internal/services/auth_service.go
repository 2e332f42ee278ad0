package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tmaeda/studycards-api/internal/constants"
	"github.com/tmaeda/studycards-api/internal/models"
	"github.com/tmaeda/studycards-api/internal/repository"
	"github.com/tmaeda/studycards-api/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles account related business logic.
type AuthService struct {
	store repository.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(store repository.Store) *AuthService {
	return &AuthService{
		store: store,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user with all counters and sequences at zero.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)

	if _, err := s.store.Users().FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	id, err := utils.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &models.User{
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.Users().Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.store.Users().FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EditUserInput holds the credential check plus the optional fields to change.
// Nil fields are left untouched.
type EditUserInput struct {
	UserID      string
	Email       string
	Password    string
	NewName     *string
	NewEmail    *string
	NewPassword *string
}

// EditUser verifies the current password and applies the provided changes.
func (s *AuthService) EditUser(input EditUserInput) (*models.User, error) {
	user, err := s.store.Users().FindByID(input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	if input.NewName != nil && *input.NewName != "" {
		user.Name = *input.NewName
	}
	if input.NewEmail != nil && *input.NewEmail != "" {
		user.Email = *input.NewEmail
	}
	if input.NewPassword != nil && *input.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), constants.BcryptCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.store.Users().Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
