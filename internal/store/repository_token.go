// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken issues candidateKey to userID unless the user already
// holds a token, in which case that token is returned unchanged. A conflict
// on user_id is absorbed by the upsert, so a unique violation means the
// candidate key belongs to another user and [ErrTokenKeyTaken] is returned.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOrCreateTokenQuery(r.db.builder(), userID, candidateKey)
	if err != nil {
		return models.Token{}, err
	}

	var token models.Token
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token.Key, &token.UserID, timeScanner{&token.CreatedAt})
	if err != nil {
		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.Token{}, ErrUserNotFound
		case UniqueViolation:
			return models.Token{}, ErrTokenKeyTaken
		}

		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error upserting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

// FindPrincipalByToken resolves key to the identity of its owner.
func (r *tokenRepository) FindPrincipalByToken(ctx context.Context, key string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPrincipalByTokenQuery(r.db.builder(), key)
	if err != nil {
		return models.Principal{}, err
	}

	var principal models.Principal
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&principal.UserID, &principal.Username)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Principal{}, ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindPrincipalByToken").Msg("error selecting token owner")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return principal, nil
}
