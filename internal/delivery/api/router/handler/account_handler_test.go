package handler

import (
	"net/http"
	"testing"
	"time"

	"lounge/internal/delivery/api/middleware"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	mockService "lounge/internal/mocks/service"
	mockUsecase "lounge/internal/mocks/usecase"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountHandler(t *testing.T) (*AccountHandler, *mockUsecase.MockAccountUsecase, *mockUsecase.MockIdentityMigrationUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	migrationUC := mockUsecase.NewMockIdentityMigrationUsecase(t)

	handler := NewAccountHandler(AccountHandlerParams{
		AccountUC:   accountUC,
		MigrationUC: migrationUC,
		Logger:      discardLogger(),
	})

	return handler, accountUC, migrationUC
}

func sampleReport() *entity.MigrationReport {
	started := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	report := entity.NewMigrationReport(testEmail, "jane.smith@example.com", "jane,doe@example,com", "jane,smith@example,com", started)
	report.Record(entity.CollectionUsers, "direct", 1)
	report.Record(entity.CollectionCarts, "direct", 1)
	report.FinishedAt = started.Add(time.Second)

	return report
}

func TestAccountHandler_ChangeEmail(t *testing.T) {
	handler, accountUC, _ := createTestAccountHandler(t)
	e := newTestEcho()
	e.POST("/account/email", handler.ChangeEmail, signedIn(testEmail))

	input := usecase.ChangeEmailInput{NewEmail: "jane.smith@example.com", Password: "secret1"}
	accountUC.EXPECT().ChangeEmail(mock.Anything, testEmail, input).Return(sampleReport(), nil).Once()

	rec := serve(t, e, http.MethodPost, "/account/email", input)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Email changed", env.Message)

	report := decodeData[entity.MigrationReport](t, env)
	assert.Equal(t, "jane.smith@example.com", report.NewEmail)
	assert.Equal(t, 1, report.Migrated(entity.CollectionCarts))
}

func TestAccountHandler_ChangeEmail_WithRecordFailures(t *testing.T) {
	handler, accountUC, _ := createTestAccountHandler(t)
	e := newTestEcho()
	e.POST("/account/email", handler.ChangeEmail, signedIn(testEmail))

	report := sampleReport()
	report.Fail(entity.CollectionOrders, "-Nord1", errors.New("connection reset"))
	accountUC.EXPECT().ChangeEmail(mock.Anything, testEmail, mock.Anything).Return(report, nil).Once()

	rec := serve(t, e, http.MethodPost, "/account/email", usecase.ChangeEmailInput{NewEmail: "jane.smith@example.com", Password: "secret1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, env.Message, "some records could not be updated")

	got := decodeData[entity.MigrationReport](t, env)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, "-Nord1", got.Failures[0].Key)
}

func TestAccountHandler_ChangeEmail_StoreFailureReturnsPartialReport(t *testing.T) {
	handler, accountUC, _ := createTestAccountHandler(t)
	e := newTestEcho()
	e.POST("/account/email", handler.ChangeEmail, signedIn(testEmail))

	report := sampleReport()
	storeErr := domainerrors.NewStoreError("set", entity.CollectionCarts, "jane,smith@example,com", errors.New("timeout"))
	accountUC.EXPECT().ChangeEmail(mock.Anything, testEmail, mock.Anything).
		Return(report, errors.Wrap(storeErr, "failed to write Cart")).Once()

	rec := serve(t, e, http.MethodPost, "/account/email", usecase.ChangeEmailInput{NewEmail: "jane.smith@example.com", Password: "secret1"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Empty(t, env.Error.Details, "5xx details must not leak")

	got := decodeData[entity.MigrationReport](t, env)
	assert.Equal(t, 1, got.Migrated(entity.CollectionUsers))
}

func TestAccountHandler_ChangeEmail_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setupMock  func(*mockUsecase.MockAccountUsecase)
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "missing new email",
			body:       map[string]string{"password": "secret1"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: "newEmail is required",
		},
		{
			name:       "malformed new email",
			body:       map[string]string{"newEmail": "jane", "password": "secret1"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: "newEmail must be a valid email",
		},
		{
			name: "wrong password",
			body: usecase.ChangeEmailInput{NewEmail: "jane.smith@example.com", Password: "wrong"},
			setupMock: func(uc *mockUsecase.MockAccountUsecase) {
				uc.EXPECT().ChangeEmail(mock.Anything, testEmail, mock.Anything).
					Return(nil, errors.WithStack(domainerrors.ErrAuthFailed)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_FAILED",
		},
		{
			name: "target taken",
			body: usecase.ChangeEmailInput{NewEmail: "jane.smith@example.com", Password: "secret1"},
			setupMock: func(uc *mockUsecase.MockAccountUsecase) {
				uc.EXPECT().ChangeEmail(mock.Anything, testEmail, mock.Anything).
					Return(nil, errors.WithStack(domainerrors.ErrIdentityConflict.WithDetails("jane.smith@example.com"))).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "IDENTITY_CONFLICT",
			wantDetail: "jane.smith@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, accountUC, _ := createTestAccountHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(accountUC)
			}
			e := newTestEcho()
			e.POST("/account/email", handler.ChangeEmail, signedIn(testEmail))

			rec := serve(t, e, http.MethodPost, "/account/email", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantDetail != "" {
				assert.Contains(t, env.Error.Details, tt.wantDetail)
			}
		})
	}
}

func TestAccountHandler_GetProfile_RequiresSession(t *testing.T) {
	handler, accountUC, _ := createTestAccountHandler(t)
	auth := mockService.NewMockAuthService(t)
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Auth: auth})

	e := newTestEcho()
	e.GET("/account/profile", handler.GetProfile, authMiddleware.Authenticate)

	t.Run("no token", func(t *testing.T) {
		rec := serve(t, e, http.MethodGet, "/account/profile", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		auth.EXPECT().VerifyToken(mock.Anything, "stale").Return("", errors.New("token expired")).Once()

		req := newRequest(http.MethodGet, "/account/profile", "stale")
		rec := record(e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})

	t.Run("valid token", func(t *testing.T) {
		auth.EXPECT().VerifyToken(mock.Anything, "good").Return(testEmail, nil).Once()
		accountUC.EXPECT().GetProfile(mock.Anything, testEmail).Return(&usecase.ProfileOutput{
			Email:    testEmail,
			Name:     "Jane",
			Surname:  "Doe",
			Initials: "JD",
		}, nil).Once()

		rec := record(e, newRequest(http.MethodGet, "/account/profile", "good"))

		assert.Equal(t, http.StatusOK, rec.Code)
		profile := decodeData[usecase.ProfileOutput](t, decode(t, rec))
		assert.Equal(t, "JD", profile.Initials)
	})
}

func TestAccountHandler_GetProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"profile missing", errors.WithStack(domainerrors.ErrProfileNotFound), http.StatusNotFound, "PROFILE_NOT_FOUND"},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, accountUC, _ := createTestAccountHandler(t)
			accountUC.EXPECT().GetProfile(mock.Anything, testEmail).Return(nil, tt.err).Once()

			e := newTestEcho()
			e.GET("/account/profile", handler.GetProfile, signedIn(testEmail))

			rec := serve(t, e, http.MethodGet, "/account/profile", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestAccountHandler_RequestDeletion(t *testing.T) {
	handler, accountUC, _ := createTestAccountHandler(t)
	e := newTestEcho()
	e.POST("/account/deletion-requests", handler.RequestDeletion, signedIn(testEmail))

	input := usecase.DeletionRequestInput{Password: "secret1", Reason: "moving abroad", Confirmed: true}
	accountUC.EXPECT().RequestDeletion(mock.Anything, testEmail, input).
		Return(&usecase.DeletionRequestOutput{RequestID: "-Ndel1"}, nil).Once()

	rec := serve(t, e, http.MethodPost, "/account/deletion-requests", input)

	assert.Equal(t, http.StatusCreated, rec.Code)
	out := decodeData[usecase.DeletionRequestOutput](t, decode(t, rec))
	assert.Equal(t, "-Ndel1", out.RequestID)
}

func TestAccountHandler_MigrationHistory(t *testing.T) {
	handler, _, migrationUC := createTestAccountHandler(t)
	e := newTestEcho()
	e.GET("/account/email/migrations", handler.MigrationHistory, signedIn(testEmail))

	migrationUC.EXPECT().History(mock.Anything, testEmail).Return([]*entity.MigrationAuditRecord{
		{OldEmail: "jane@example.com", NewEmail: testEmail, Migrated: 3},
	}, nil).Once()

	rec := serve(t, e, http.MethodGet, "/account/email/migrations", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	records := decodeData[[]entity.MigrationAuditRecord](t, decode(t, rec))
	require.Len(t, records, 1)
	assert.Equal(t, "jane@example.com", records[0].OldEmail)
}
