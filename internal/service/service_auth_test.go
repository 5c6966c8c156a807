package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/docrelay/internal/config"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/mock"
	"github.com/MKhiriev/docrelay/internal/store"
	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "docrelay-test",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop())
	return svc, mockUsers
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.SignUpRequest{
		Email:    "alice@example.com",
		Password: "super-secret",
		Name:     "Alice",
	}

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, request.Email, u.Email)
			assert.Equal(t, request.Name, u.Name)
			assert.NotEqual(t, request.Password, u.PasswordHash, "plaintext password must never reach the repository")
			assert.True(t, utils.ComparePassword(request.Password, u.PasswordHash))
			u.UserID = 1
			return u, nil
		},
	)

	registered, err := svc.SignUp(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestAuthService_SignUp_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SignUp(ctx, models.SignUpRequest{Email: "a@b.com", Password: ""})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "a@b.com", Password: "secret"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("super-secret")
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, errors.New("connection refused"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 42, Email: "alice@example.com"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── GetUserByID ──────────────────────────────────────────────────────────────

func TestAuthService_GetUserByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{UserID: 7, Email: "a@b.com"}, nil)

	user, err := svc.GetUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, int64(404)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUserByID(ctx, 404)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}
