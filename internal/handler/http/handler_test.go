package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/internal/validators"
	"github.com/MKhiriev/docrelay/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

// mockDocumentService implements service.DocumentService for unit tests.
type mockDocumentService struct {
	uploadDocumentFn   func(ctx context.Context, authUserID int64, request models.DocumentUploadRequest) (models.Document, error)
	getUserDocumentsFn func(ctx context.Context, authUserID, userID int64) ([]models.Document, error)
	getDocumentFn      func(ctx context.Context, authUserID, documentID int64) (models.Document, error)
	deleteDocumentFn   func(ctx context.Context, authUserID, documentID int64) (models.Document, error)
}

func (m *mockDocumentService) UploadDocument(ctx context.Context, authUserID int64, request models.DocumentUploadRequest) (models.Document, error) {
	return m.uploadDocumentFn(ctx, authUserID, request)
}

func (m *mockDocumentService) GetUserDocuments(ctx context.Context, authUserID, userID int64) ([]models.Document, error) {
	return m.getUserDocumentsFn(ctx, authUserID, userID)
}

func (m *mockDocumentService) GetDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error) {
	return m.getDocumentFn(ctx, authUserID, documentID)
}

func (m *mockDocumentService) DeleteDocument(ctx context.Context, authUserID, documentID int64) (models.Document, error) {
	return m.deleteDocumentFn(ctx, authUserID, documentID)
}

// mockProfileService implements service.ProfileService for unit tests.
type mockProfileService struct {
	upsertProfileImageFn func(ctx context.Context, authUserID int64, profile models.Profile) (models.Profile, error)
	getProfileImageFn    func(ctx context.Context, authUserID, userID int64) (models.Profile, error)
}

func (m *mockProfileService) UpsertProfileImage(ctx context.Context, authUserID int64, profile models.Profile) (models.Profile, error) {
	return m.upsertProfileImageFn(ctx, authUserID, profile)
}

func (m *mockProfileService) GetProfileImage(ctx context.Context, authUserID, userID int64) (models.Profile, error) {
	return m.getProfileImageFn(ctx, authUserID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks are
// allowed for services a test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, documents service.DocumentService, profiles service.ProfileService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		DocumentService: documents,
		ProfileService:  profiles,
	}
	return NewHandler(svcs, validators.NewCredentialsValidator(), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeResponse unmarshals the recorded body into a models.Response envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// authedRequest attaches an authenticated user id to the request context the
// same way the auth middleware does.
func authedRequest(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// multipartBody builds a multipart/form-data body with a single file field.
func multipartBody(t *testing.T, fieldName, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
