package service

import (
	"context"
	"fmt"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/utils"
	"github.com/retailstack/store-api/models"
)

// userService is the concrete implementation of UserService.
//
// Plain-text passwords cross into this layer on Add and Update only; they are
// bcrypt-hashed before touching the repository and cleared from everything
// the service returns.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
// The returned service is safe for concurrent use.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetAll returns every account, sanitized.
func (u *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("users listing failed")
		return nil, fmt.Errorf("users listing failed: %w", err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}

	return users, nil
}

// GetByID returns a single account with its order back-references, sanitized.
//
// Returns store.ErrUserNotFound (wrapped) when no account carries the id.
func (u *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Sanitized(), nil
}

// Add creates a new account from a username and plain-text password.
//
// Returns ErrInvalidDataProvided if either credential is empty, or a wrapped
// storage error (store.ErrUsernameAlreadyExists, store.ErrIDAlreadyExists).
func (u *userService) Add(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	created, err := u.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.Sanitized(), nil
}

// Update replaces an existing account wholesale. A new plain-text password is
// required and re-hashed: full-record update semantics, same as the other
// entities.
//
// Returns ErrInvalidDataProvided on missing credentials or
// store.ErrUserNotFound (wrapped) when the id matches nothing.
func (u *userService) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	if err := u.userRepository.Update(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update ended with error")
		return fmt.Errorf("user update ended with error: %w", err)
	}

	return nil
}

// Delete removes an account by id. Orders referencing the account are left
// in place: order ownership is a plain user id column with no enforced
// reference, so they simply keep pointing at the removed id.
//
// Returns store.ErrUserNotFound (wrapped) when the id matches nothing.
func (u *userService) Delete(ctx context.Context, id int64) error {
	if err := u.userRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
