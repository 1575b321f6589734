package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/models"
)

type verificationRepository struct {
	*DB
	logger *logger.Logger
}

func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	return &verificationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *verificationRepository) Save(ctx context.Context, v models.Verification) (int64, error) {
	log := logger.FromContext(ctx)

	if v.VerifiedAt.IsZero() {
		v.VerifiedAt = time.Now()
	}

	query, args, err := buildInsertVerificationQuery(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.Save").
			Str("content_id", v.ContentID).
			Str("token_id", v.TokenID).
			Msg("failed to insert verification")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *verificationRepository) Last(ctx context.Context, contentID, tokenID string) (models.Verification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastVerificationQuery(contentID, tokenID)
	if err != nil {
		return models.Verification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v models.Verification
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.ContentID,
		&v.TokenID,
		&v.WalletAddress,
		&v.Valid,
		&v.VerifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Verification{}, ErrVerificationNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.Last").
			Str("content_id", contentID).
			Str("token_id", tokenID).
			Msg("failed to read last verification")
		return models.Verification{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return v, nil
}

func (r *verificationRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildPruneVerificationsQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "verificationRepository.Prune").Msg("failed to prune verifications")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
