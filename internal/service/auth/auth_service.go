package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskforge/taskforge-api/internal/domain"
	"github.com/taskforge/taskforge-api/internal/platform/logger"
	"github.com/taskforge/taskforge-api/internal/store"
)

// AuthService orchestrates user registration and login. It owns the
// interaction between the user store, the password hasher, and the token
// service; handlers only translate its results onto the wire.
type AuthService struct {
	userStore store.UserStore
	hasher    PasswordHasher
	jwt       JWTService
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService with the given dependencies.
// All dependencies are required.
func NewAuthService(
	userStore store.UserStore,
	hasher PasswordHasher,
	jwt JWTService,
	logger *slog.Logger,
) *AuthService {
	if userStore == nil || hasher == nil || jwt == nil {
		panic("auth service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		userStore: userStore,
		hasher:    hasher,
		jwt:       jwt,
		logger:    logger.With(slog.String("component", "auth_service")),
	}
}

// Register creates a new user account and returns its public fields.
// Returns store.ErrEmailExists when an account with that email already
// exists. The password hash never leaves this layer.
func (s *AuthService) Register(
	ctx context.Context,
	name, email, password string,
) (domain.PublicUser, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Uniqueness pre-check. The unique constraint on users.email still
	// backstops the race where two registrations interleave.
	_, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		log.Debug("registration rejected: email already registered")
		return domain.PublicUser{}, store.ErrEmailExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return domain.PublicUser{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hashed)
	if err != nil {
		return domain.PublicUser{}, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return domain.PublicUser{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user.Public(), nil
}

// LoginResult carries a successful login's token and public user fields.
type LoginResult struct {
	AccessToken string
	User        domain.PublicUser
}

// Login verifies the credentials and issues an access token.
// Returns ErrInvalidCredentials for both an unknown email and a wrong
// password; callers must not be able to tell which.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login rejected: password mismatch",
			slog.String("user_id", user.ID.String()))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return LoginResult{
		AccessToken: token,
		User:        user.Public(),
	}, nil
}
