package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/adapter"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/store"
	"github.com/MKhiriev/docrelay/models"
)

// documentService is the concrete implementation of DocumentService.
// It forwards uploaded files to the external processing backend through a
// DocumentRelay and records the backend-assigned filenames through a
// DocumentRepository. Every operation enforces that the authenticated user
// owns the documents it touches.
type documentService struct {
	documentRepository store.DocumentRepository
	relay              adapter.DocumentRelay

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, relay adapter.DocumentRelay, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		relay:              relay,
		logger:             logger,
	}
}

// UploadDocument forwards the file to the processing backend and persists the
// resulting document record.
//
// The relay call happens first: the local record is only created once the
// backend has accepted the file and assigned it a filename. Nothing is
// persisted when the relay fails.
//
// Returns the persisted document or:
//   - ErrOwnershipViolation if request.UserID does not match authUserID.
//   - ErrInvalidDataProvided if the file payload or filename is empty.
//   - ErrRelayFailed (wrapped) if the processing backend rejects the file or
//     cannot be reached.
func (d *documentService) UploadDocument(ctx context.Context, authUserID int64, request models.DocumentUploadRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if request.UserID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("requestUserID", request.UserID).
			Msg("upload attempted for another user")
		return models.Document{}, ErrOwnershipViolation
	}

	if len(request.File) == 0 || request.Filename == "" {
		log.Error().Str("filename", request.Filename).Msg("invalid document upload data provided")
		return models.Document{}, ErrInvalidDataProvided
	}

	assignedFilename, err := d.relay.ForwardDocument(ctx, request)
	if err != nil {
		log.Err(err).Str("filename", request.Filename).Msg("document relay failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	document, err := d.documentRepository.CreateDocument(ctx, models.Document{
		UserID:   request.UserID,
		Filename: assignedFilename,
		Filetype: request.Filetype,
	})
	if err != nil {
		log.Err(err).Str("filename", assignedFilename).Msg("document creation ended with error")
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	return document, nil
}

// GetUserDocuments lists every document owned by userID, newest first.
//
// Returns ErrOwnershipViolation if userID does not match authUserID. An owner
// with no documents gets an empty slice, not an error.
func (d *documentService) GetUserDocuments(ctx context.Context, authUserID, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	if userID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("userID", userID).
			Msg("document listing attempted for another user")
		return nil, ErrOwnershipViolation
	}

	documents, err := d.documentRepository.FindDocumentsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("document search by user failed")
		return nil, fmt.Errorf("document search by user failed: %w", err)
	}

	return documents, nil
}

// GetDocument fetches a single document by id.
//
// The record is looked up first so that a missing document surfaces as
// store.ErrDocumentNotFound; a document owned by someone else surfaces as
// ErrOwnershipViolation.
func (d *documentService) GetDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	document, err := d.documentRepository.FindDocumentByID(ctx, documentID)
	if err != nil {
		log.Err(err).Int64("documentID", documentID).Msg("document search by id failed")
		return models.Document{}, fmt.Errorf("document search by id failed: %w", err)
	}

	if document.UserID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("ownerID", document.UserID).
			Int64("documentID", documentID).
			Msg("document access attempted by non-owner")
		return models.Document{}, ErrOwnershipViolation
	}

	return document, nil
}

// DeleteDocument removes a document record by id.
//
// Ownership is checked against the stored record before anything is deleted;
// a non-owner cannot remove the record or learn more than its existence.
// Returns the deleted record so that callers can echo it back.
func (d *documentService) DeleteDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	document, err := d.documentRepository.FindDocumentByID(ctx, documentID)
	if err != nil {
		log.Err(err).Int64("documentID", documentID).Msg("document search by id failed")
		return models.Document{}, fmt.Errorf("document search by id failed: %w", err)
	}

	if document.UserID != authUserID {
		log.Error().
			Int64("authUserID", authUserID).
			Int64("ownerID", document.UserID).
			Int64("documentID", documentID).
			Msg("document deletion attempted by non-owner")
		return models.Document{}, ErrOwnershipViolation
	}

	deleted, err := d.documentRepository.DeleteDocumentByID(ctx, documentID)
	if err != nil {
		log.Err(err).Int64("documentID", documentID).Msg("document deletion ended with error")
		return models.Document{}, fmt.Errorf("document deletion ended with error: %w", err)
	}

	return deleted, nil
}
