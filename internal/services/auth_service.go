package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kerudungstore/backend/internal/auth"
	"github.com/kerudungstore/backend/internal/models"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user.
	//
	// If the username is already taken, models.ErrConflict will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username.
	//
	// "username" parameter is used to retrieve a user by username.
	//
	// If user with such username does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// authService implements AuthService
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Register creates a new user account. The role defaults to "user" when the
// form leaves it empty; an unknown role value is rejected.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty: %w", models.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password cannot be empty: %w", models.ErrValidation)
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleUser // Default role
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, models.ErrValidation)
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	// Uniqueness is enforced by the storage layer; a duplicate username comes
	// back as models.ErrConflict
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

// Login authenticates a user and returns the user together with a signed
// session token. An unknown username and a wrong password are indistinguishable
// to the caller.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, "", models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return user, token, nil
}

// EnsureAdmin seeds the default admin account when no user named "admin"
// exists yet. Called once at startup.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     "admin",
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, models.ErrConflict) {
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	s.logger.Info("seeded default admin account")
	return nil
}
