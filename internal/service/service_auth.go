// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/store"
	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/internal/validators"
	"github.com/MKhiriev/sensor-hub/models"
)

// dummyPassword is hashed once per service so that logins of unknown users
// pay for the same bcrypt comparison as logins of existing ones.
const dummyPassword = "sensor-hub-dummy-password"

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are random opaque keys
// persisted one per user.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	validator       validators.Validator

	// bcryptCost is the work factor of newly hashed passwords.
	bcryptCost int
	// dummyHash is compared against when the username is unknown.
	dummyHash string
	// generateToken produces candidate token keys.
	generateToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService on top of the user and token
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenRepository store.TokenRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.BcryptCost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error hashing dummy password")
	}

	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		validator:       validator,
		bcryptCost:      cfg.BcryptCost,
		dummyHash:       dummyHash,
		generateToken:   utils.GenerateToken,
		logger:          logger,
	}
}

// Register creates a new user account and issues its token.
//
// Returns:
//   - a [*ValidationError] if the username or password is missing or out of bounds.
//   - a wrapped [store.ErrUsernameTaken] if the username is already in use.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid registration data")
		return models.Token{}, &ValidationError{Err: err}
	}

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	return a.issueToken(ctx, user.UserID)
}

// Login verifies the credentials and returns the user's token.
//
// Returns [ErrInvalidCredentials] for an unknown username or a wrong
// password and a [*ValidationError] when a field is missing.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldPassword); err != nil {
		log.Debug().Err(err).Msg("invalid login data")
		return models.Token{}, &ValidationError{Err: err}
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.CheckPassword(a.dummyHash, credentials.Password)
			log.Debug().Str("username", credentials.Username).Msg("login of unknown user")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, credentials.Password) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.issueToken(ctx, user.UserID)
}

// Authenticate resolves a bearer token key to its principal. Unknown and
// empty keys yield [ErrInvalidToken].
func (a *authService) Authenticate(ctx context.Context, key string) (models.Principal, error) {
	if key == "" {
		return models.Principal{}, ErrInvalidToken
	}

	principal, err := a.tokenRepository.FindPrincipalByToken(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.Principal{}, ErrInvalidToken
		}
		return models.Principal{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return principal, nil
}

// issueTokenAttempts bounds key regeneration after a key collision.
const issueTokenAttempts = 2

// issueToken returns the existing token of userID or stores a fresh one.
func (a *authService) issueToken(ctx context.Context, userID int64) (models.Token, error) {
	var err error
	for attempt := 0; attempt < issueTokenAttempts; attempt++ {
		var candidate string
		candidate, err = a.generateToken()
		if err != nil {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}

		var token models.Token
		token, err = a.tokenRepository.GetOrCreateToken(ctx, userID, candidate)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, store.ErrTokenKeyTaken) {
			break
		}
		logger.FromContext(ctx).Warn().Int64("user_id", userID).Msg("token key collision, regenerating")
	}

	logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("token issuance failed")
	return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
}
