package service

import (
	"context"

	"github.com/MKhiriev/docrelay/models"
)

type AuthService interface {
	SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

type DocumentService interface {
	UploadDocument(ctx context.Context, authUserID int64, request models.DocumentUploadRequest) (models.Document, error)
	GetUserDocuments(ctx context.Context, authUserID, userID int64) ([]models.Document, error)
	GetDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error)
	DeleteDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error)
}

type ProfileService interface {
	UpsertProfileImage(ctx context.Context, authUserID int64, profile models.Profile) (models.Profile, error)
	GetProfileImage(ctx context.Context, authUserID, userID int64) (models.Profile, error)
}
