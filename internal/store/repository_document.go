package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It manages document metadata rows in the "documents"
// table; the file contents themselves never touch this service.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDocument persists a new document metadata record and returns the
// fully populated [models.Document] with server-assigned fields
// (DocumentID, UploadedAt).
func (r *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDocument, document.UserID, document.Filename, document.Filetype)

	if err := row.Scan(&document.DocumentID, &document.UserID, &document.Filename, &document.Filetype, &document.UploadedAt); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: creating document")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return document, nil
}

// FindDocumentsByUserID returns every document owned by the given user,
// newest upload first. The SELECT is built dynamically with squirrel.
//
// An empty result set is returned as an empty slice, not as an error.
func (r *documentRepository) FindDocumentsByUserID(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentsByUserID").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentsByUserID").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		var document models.Document
		if err := rows.Scan(&document.DocumentID, &document.UserID, &document.Filename, &document.Filetype, &document.UploadedAt); err != nil {
			log.Err(err).Str("func", "*documentRepository.FindDocumentsByUserID").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

// FindDocumentByID retrieves the document record with the given numeric
// identifier.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrDocumentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *documentRepository) FindDocumentByID(ctx context.Context, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, findDocumentByID, documentID)

	if err := row.Scan(&document.DocumentID, &document.UserID, &document.Filename, &document.Filetype, &document.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}

		log.Err(err).Str("func", "*documentRepository.FindDocumentByID").Msg("error: finding document by id")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return document, nil
}

// DeleteDocumentByID deletes the document with the given identifier and
// returns the deleted record via the DELETE's RETURNING clause, so the caller
// gets both the deletion and its witness in one round trip.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrDocumentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *documentRepository) DeleteDocumentByID(ctx context.Context, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, deleteDocumentByID, documentID)

	if err := row.Scan(&document.DocumentID, &document.UserID, &document.Filename, &document.Filetype, &document.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}

		log.Err(err).Str("func", "*documentRepository.DeleteDocumentByID").Msg("error: deleting document by id")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return document, nil
}
