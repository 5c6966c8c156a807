package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. It stores profile image blobs in the "profiles"
// table, at most one row per user.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertProfileImage inserts the profile image for the given user or, when a
// row already exists, replaces the stored blob, content type, and upload
// timestamp. The one-row-per-user invariant rests on the unique constraint
// on profiles.user_id and the ON CONFLICT clause, so concurrent uploads
// cannot create duplicates.
//
// The returned record carries the server-assigned fields but not the image
// blob; callers that need the bytes should use [FindProfileImageByUserID].
func (r *profileRepository) UpsertProfileImage(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProfileQuery(profile.UserID, profile.Image, profile.ContentType)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfileImage").Msg("error: building query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var saved models.Profile
	if err := row.Scan(&saved.ProfileID, &saved.UserID, &saved.ContentType, &saved.UploadedAt); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfileImage").Msg("error: upserting profile image")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindProfileImageByUserID retrieves the stored profile image of the given
// user, including the raw blob and its recorded content type.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) FindProfileImageByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByUserID, userID)

	if err := row.Scan(&profile.ProfileID, &profile.UserID, &profile.Image, &profile.ContentType, &profile.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.FindProfileImageByUserID").Msg("error: finding profile image")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}
