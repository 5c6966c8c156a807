package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/store"
	"github.com/MKhiriev/docrelay/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pdfPayload = "%PDF-1.7 test"

// uploadDocumentRequest builds an authenticated multipart upload request.
func uploadDocumentRequest(t *testing.T, userID int64, userIDQuery, filename, contentType string) *http.Request {
	t.Helper()

	body, formContentType := multipartBody(t, "file", filename, contentType, []byte(pdfPayload))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/document/upload?userId="+userIDQuery, body)
	req.Header.Set("Content-Type", formContentType)
	return authedRequest(req, userID)
}

// withURLParam attaches a chi url param to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

// ─────────────────────────────────────────────
// uploadDocument
// ─────────────────────────────────────────────

// TestUploadDocument_Success verifies that a valid PDF upload reaches the
// service with the parsed payload and results in 201 Created.
func TestUploadDocument_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com", Name: "Alice"}, nil
		},
	}
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, authUserID int64, req models.DocumentUploadRequest) (models.Document, error) {
			assert.Equal(t, int64(42), authUserID)
			assert.Equal(t, int64(42), req.UserID)
			assert.Equal(t, "Alice", req.Username)
			assert.Equal(t, "report.pdf", req.Filename)
			assert.Equal(t, "application/pdf", req.Filetype)
			assert.Equal(t, []byte(pdfPayload), req.File)
			return models.Document{DocumentID: 1, UserID: 42, Filename: "report_a1b2.pdf", Filetype: req.Filetype}, nil
		},
	}

	h := newTestHandler(t, auth, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, uploadDocumentRequest(t, 42, "42", "report.pdf", "application/pdf"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "report_a1b2.pdf")
}

// TestUploadDocument_UsernameFromQuery verifies that an explicit username
// query parameter is forwarded verbatim without an account lookup.
func TestUploadDocument_UsernameFromQuery(t *testing.T) {
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, _ int64, req models.DocumentUploadRequest) (models.Document, error) {
			assert.Equal(t, "alice-the-writer", req.Username)
			return models.Document{DocumentID: 1, UserID: 42, Filename: "report_a1b2.pdf"}, nil
		},
	}

	body, formContentType := multipartBody(t, "file", "report.pdf", "application/pdf", []byte(pdfPayload))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/document/upload?userId=42&username=alice-the-writer", body)
	req.Header.Set("Content-Type", formContentType)
	req = authedRequest(req, 42)

	h := newTestHandler(t, nil, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

// TestUploadDocument_NonNumericUserID verifies that a malformed userId query
// value maps to 400 before the service (and therefore the relay) is reached.
func TestUploadDocument_NonNumericUserID(t *testing.T) {
	serviceCalled := false
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, _ int64, _ models.DocumentUploadRequest) (models.Document, error) {
			serviceCalled = true
			return models.Document{}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, uploadDocumentRequest(t, 42, "abc", "report.pdf", "application/pdf"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, serviceCalled, "nothing may be forwarded for a malformed user id")
}

// TestUploadDocument_UnsupportedType verifies that a non-PDF/DOCX file maps to
// 400 without reaching the service.
func TestUploadDocument_UnsupportedType(t *testing.T) {
	serviceCalled := false
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, _ int64, _ models.DocumentUploadRequest) (models.Document, error) {
			serviceCalled = true
			return models.Document{}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, uploadDocumentRequest(t, 42, "42", "notes.txt", "text/plain"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PDF")
	assert.False(t, serviceCalled)
}

// TestUploadDocument_MissingFile verifies that a request without a `file`
// field maps to 400.
func TestUploadDocument_MissingFile(t *testing.T) {
	body, formContentType := multipartBody(t, "attachment", "report.pdf", "application/pdf", []byte(pdfPayload))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/document/upload?userId=42", body)
	req.Header.Set("Content-Type", formContentType)
	req = authedRequest(req, 42)

	h := newTestHandler(t, &mockAuthService{}, &mockDocumentService{}, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

// TestUploadDocument_OwnershipViolation verifies that uploading on behalf of
// another user maps to 403.
func TestUploadDocument_OwnershipViolation(t *testing.T) {
	auth := &mockAuthService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, _ int64, _ models.DocumentUploadRequest) (models.Document, error) {
			return models.Document{}, service.ErrOwnershipViolation
		},
	}

	h := newTestHandler(t, auth, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, uploadDocumentRequest(t, 7, "42", "report.pdf", "application/pdf"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestUploadDocument_RelayFailure verifies that a relay failure maps to
// 502 Bad Gateway.
func TestUploadDocument_RelayFailure(t *testing.T) {
	auth := &mockAuthService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}
	documents := &mockDocumentService{
		uploadDocumentFn: func(_ context.Context, _ int64, _ models.DocumentUploadRequest) (models.Document, error) {
			return models.Document{}, service.ErrRelayFailed
		},
	}

	h := newTestHandler(t, auth, documents, nil)
	rec := httptest.NewRecorder()

	h.uploadDocument(rec, uploadDocumentRequest(t, 42, "42", "report.pdf", "application/pdf"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrRelayFailed.Error())
}

// ─────────────────────────────────────────────
// listDocuments
// ─────────────────────────────────────────────

// TestListDocuments_Success verifies that the owner's documents are returned
// in the envelope.
func TestListDocuments_Success(t *testing.T) {
	documents := &mockDocumentService{
		getUserDocumentsFn: func(_ context.Context, authUserID, userID int64) ([]models.Document, error) {
			assert.Equal(t, int64(42), authUserID)
			assert.Equal(t, int64(42), userID)
			return []models.Document{
				{DocumentID: 2, UserID: 42, Filename: "b.pdf"},
				{DocumentID: 1, UserID: 42, Filename: "a.pdf"},
			}, nil
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document/42", nil)
	req = withURLParam(authedRequest(req, 42), "userId", "42")
	rec := httptest.NewRecorder()

	h.listDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a.pdf")
	assert.Contains(t, rec.Body.String(), "b.pdf")
}

// TestListDocuments_Empty verifies that an owner with no documents gets an
// empty list, not an error.
func TestListDocuments_Empty(t *testing.T) {
	documents := &mockDocumentService{
		getUserDocumentsFn: func(_ context.Context, _, _ int64) ([]models.Document, error) {
			return []models.Document{}, nil
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document/42", nil)
	req = withURLParam(authedRequest(req, 42), "userId", "42")
	rec := httptest.NewRecorder()

	h.listDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

// TestListDocuments_OtherUser verifies that listing another user's documents
// maps to 403.
func TestListDocuments_OtherUser(t *testing.T) {
	documents := &mockDocumentService{
		getUserDocumentsFn: func(_ context.Context, _, _ int64) ([]models.Document, error) {
			return nil, service.ErrOwnershipViolation
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document/42", nil)
	req = withURLParam(authedRequest(req, 7), "userId", "42")
	rec := httptest.NewRecorder()

	h.listDocuments(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// getDocument / deleteDocument
// ─────────────────────────────────────────────

// TestGetDocument_NotFound verifies that store.ErrDocumentNotFound maps to 404.
func TestGetDocument_NotFound(t *testing.T) {
	documents := &mockDocumentService{
		getDocumentFn: func(_ context.Context, _, _ int64) (models.Document, error) {
			return models.Document{}, store.ErrDocumentNotFound
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document/doc/404", nil)
	req = withURLParam(authedRequest(req, 42), "id", "404")
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetDocument_Success verifies the happy path.
func TestGetDocument_Success(t *testing.T) {
	documents := &mockDocumentService{
		getDocumentFn: func(_ context.Context, authUserID, documentID int64) (models.Document, error) {
			assert.Equal(t, int64(42), authUserID)
			assert.Equal(t, int64(5), documentID)
			return models.Document{DocumentID: 5, UserID: 42, Filename: "report_a1b2.pdf"}, nil
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/document/doc/5", nil)
	req = withURLParam(authedRequest(req, 42), "id", "5")
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "report_a1b2.pdf")
}

// TestDeleteDocument_OtherUser verifies that deleting another user's document
// maps to 403.
func TestDeleteDocument_OtherUser(t *testing.T) {
	documents := &mockDocumentService{
		deleteDocumentFn: func(_ context.Context, _, _ int64) (models.Document, error) {
			return models.Document{}, service.ErrOwnershipViolation
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/document/doc/5", nil)
	req = withURLParam(authedRequest(req, 7), "id", "5")
	rec := httptest.NewRecorder()

	h.deleteDocument(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestDeleteDocument_Success verifies the happy path.
func TestDeleteDocument_Success(t *testing.T) {
	documents := &mockDocumentService{
		deleteDocumentFn: func(_ context.Context, _, documentID int64) (models.Document, error) {
			return models.Document{DocumentID: documentID, UserID: 42, Filename: "report_a1b2.pdf"}, nil
		},
	}

	h := newTestHandler(t, nil, documents, nil)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/document/doc/5", nil)
	req = withURLParam(authedRequest(req, 42), "id", "5")
	rec := httptest.NewRecorder()

	h.deleteDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "document deleted", resp.Message)
}
