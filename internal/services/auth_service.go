package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ismavld/esport-tournament/internal/auth"
	"github.com/ismavld/esport-tournament/internal/constants"
	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token issuance. It sits outside
// the lifecycle core: its only job is to hand a resolved (userID, role) pair
// to the rest of the API.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpire time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpire time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     models.UserRole
}

// Register creates a new user and returns it with a signed token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)

	if email == "" {
		return nil, "", apierrors.Validation("Email is required")
	}
	if username == "" {
		return nil, "", apierrors.Validation("Username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, "", apierrors.Validation(fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	}

	role := input.Role
	if role == "" {
		role = models.RolePlayer
	}
	if !role.Valid() {
		return nil, "", apierrors.Validation("Role must be PLAYER, ORGANIZER or ADMIN")
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", apierrors.Conflict("Email already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, "", apierrors.Conflict("Username already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apierrors.Conflict("Email or username already in use")
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := auth.Sign(user.ID, user.Role, s.jwtSecret, s.jwtExpire)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apierrors.Unauthorized("Invalid email or password")
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", apierrors.Unauthorized("Invalid email or password")
	}

	token, err := auth.Sign(user.ID, user.Role, s.jwtSecret, s.jwtExpire)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// ListUsers returns the user directory.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
