package models

import "time"

// Profile holds the profile image of a user. There is at most one Profile
// row per user; writes go through an upsert keyed on UserID.
type Profile struct {
	// ProfileID is the internal unique identifier of the profile record.
	ProfileID int64 `json:"id"`

	// UserID is the identifier of the owning user. A unique constraint on
	// this column guarantees the one-to-one relation with users.
	UserID int64 `json:"user_id"`

	// Image is the raw image blob. It is excluded from JSON serialization
	// and returned only as a binary response body.
	Image []byte `json:"-"`

	// ContentType is the MIME type recorded when the image was uploaded.
	// It is echoed back verbatim when the image is served.
	ContentType string `json:"content_type"`

	// UploadedAt is the timestamp of the last image upload.
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
