package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// UserService provides account operations.
type UserService interface {
	// Register creates a new account. Returns a *domain.ValidationError for
	// bad input and store.ErrEmailExists when the email is taken.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate checks an email/password pair and returns the matching
	// user, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// PasswordService hashes new passwords and checks presented ones.
type PasswordService interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

type userServiceImpl struct {
	userStore store.UserStore
	passwords PasswordService
	logger    *slog.Logger
}

var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	passwords PasswordService,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if passwords == nil {
		return nil, fmt.Errorf("passwords cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		passwords: passwords,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		log.Debug("registration input rejected", slog.String("error", err.Error()))
		return nil, err
	}

	// The unique index still catches concurrent registrations below.
	if _, err := s.userStore.GetByEmail(ctx, user.Email); err == nil {
		log.Debug("attempted to register existing email")
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check existing email", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", err)
	}

	hash, err := s.passwords.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register existing email")
			return nil, store.ErrEmailExists
		}
		log.Error("failed to save user", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *userServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "authenticate", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login with wrong password", slog.String("user_id", user.ID.String()))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to compare password hash",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError("user", "authenticate", err)
	}

	log.Debug("user authenticated", slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found", slog.String("user_id", userID.String()))
			return nil, err
		}
		log.Error("failed to retrieve user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("user", "get", err)
	}

	return user, nil
}
