package store

import (
	"context"

	"github.com/MKhiriev/docrelay/models"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. Returns [ErrEmailAlreadyExists]
	// when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by email.
	// Returns [ErrUserNotFound] when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its numeric identifier.
	// Returns [ErrUserNotFound] when no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	// CreateDocument persists a new document record and returns it with
	// server-assigned fields populated.
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)

	// FindDocumentsByUserID returns all documents owned by the given user,
	// newest first. An empty slice is not an error.
	FindDocumentsByUserID(ctx context.Context, userID int64) ([]models.Document, error)

	// FindDocumentByID looks a document up by its numeric identifier.
	// Returns [ErrDocumentNotFound] when no such document exists.
	FindDocumentByID(ctx context.Context, documentID int64) (models.Document, error)

	// DeleteDocumentByID deletes a document and returns the deleted record.
	// Returns [ErrDocumentNotFound] when no such document exists.
	DeleteDocumentByID(ctx context.Context, documentID int64) (models.Document, error)
}

// ProfileRepository defines persistence operations for profile images.
type ProfileRepository interface {
	// UpsertProfileImage inserts or replaces the profile image of the given
	// user and returns the resulting record without the image blob.
	UpsertProfileImage(ctx context.Context, profile models.Profile) (models.Profile, error)

	// FindProfileImageByUserID returns the stored profile image of the given
	// user. Returns [ErrProfileNotFound] when the user has no image.
	FindProfileImageByUserID(ctx context.Context, userID int64) (models.Profile, error)
}
