package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/store"
	"github.com/MKhiriev/docrelay/models"
)

// profileService is the concrete implementation of ProfileService.
// It stores profile images as binary blobs through a ProfileRepository,
// keeping at most one image per user.
type profileService struct {
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

// UpsertProfileImage stores or replaces the profile image for profile.UserID.
//
// Returns the persisted profile record (without the image bytes) or:
//   - ErrOwnershipViolation if profile.UserID does not match authUserID.
//   - ErrInvalidDataProvided if the image payload or content type is empty.
func (p *profileService) UpsertProfileImage(ctx context.Context, authUserID int64, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile.UserID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("profileUserID", profile.UserID).
			Msg("profile image upload attempted for another user")
		return models.Profile{}, ErrOwnershipViolation
	}

	if len(profile.Image) == 0 || profile.ContentType == "" {
		log.Error().Str("contentType", profile.ContentType).Msg("invalid profile image data provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	saved, err := p.profileRepository.UpsertProfileImage(ctx, profile)
	if err != nil {
		log.Err(err).Int64("userID", profile.UserID).Msg("profile image upsert ended with error")
		return models.Profile{}, fmt.Errorf("profile image upsert ended with error: %w", err)
	}

	return saved, nil
}

// GetProfileImage fetches the stored profile image for userID, including the
// image bytes and the content type recorded at upload time.
//
// Returns ErrOwnershipViolation if userID does not match authUserID; a user
// without a stored image surfaces as store.ErrProfileNotFound.
func (p *profileService) GetProfileImage(ctx context.Context, authUserID, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if userID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("userID", userID).
			Msg("profile image access attempted for another user")
		return models.Profile{}, ErrOwnershipViolation
	}

	profile, err := p.profileRepository.FindProfileImageByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile image search failed")
		return models.Profile{}, fmt.Errorf("profile image search failed: %w", err)
	}

	return profile, nil
}
