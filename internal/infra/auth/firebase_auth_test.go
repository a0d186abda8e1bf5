package auth

import (
	"context"
	"net/http"
	"testing"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeFirebaseAdmin struct {
	users   map[string]string // email -> uid
	updated map[string]*firebaseauth.UserToUpdate
	revoked []string
	claims  map[string]any
}

func newFakeFirebaseAdmin() *fakeFirebaseAdmin {
	return &fakeFirebaseAdmin{
		users:   map[string]string{"jane.doe@example.com": "uid-1"},
		updated: map[string]*firebaseauth.UserToUpdate{},
	}
}

func (f *fakeFirebaseAdmin) GetUserByEmail(_ context.Context, email string) (*firebaseauth.UserRecord, error) {
	uid, ok := f.users[email]
	if !ok {
		return nil, errors.New("no user record found for the given email")
	}

	return &firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: uid, Email: email}}, nil
}

func (f *fakeFirebaseAdmin) CreateUser(context.Context, *firebaseauth.UserToCreate) (*firebaseauth.UserRecord, error) {
	return &firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: "uid-new"}}, nil
}

func (f *fakeFirebaseAdmin) UpdateUser(_ context.Context, uid string, user *firebaseauth.UserToUpdate) (*firebaseauth.UserRecord, error) {
	f.updated[uid] = user

	return &firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: uid}}, nil
}

func (f *fakeFirebaseAdmin) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)

	return nil
}

func (f *fakeFirebaseAdmin) VerifyIDTokenAndCheckRevoked(_ context.Context, idToken string) (*firebaseauth.Token, error) {
	if idToken != "valid" {
		return nil, errors.New("ID token has been revoked")
	}

	return &firebaseauth.Token{UID: "uid-1", Claims: f.claims}, nil
}

func newTestFirebaseAuth(admin *fakeFirebaseAdmin, verifyErr error) *firebaseAuthService {
	return &firebaseAuthService{
		admin: admin,
		verifyPassword: func(_ context.Context, email, _ string) (*service.Session, error) {
			if verifyErr != nil {
				return nil, verifyErr
			}

			return &service.Session{Email: email, Token: "id-token"}, nil
		},
	}
}

func TestFirebaseAuth_VerifyToken(t *testing.T) {
	admin := newFakeFirebaseAdmin()
	admin.claims = map[string]any{"email": "jane.doe@example.com"}
	svc := newTestFirebaseAuth(admin, nil)

	email, err := svc.VerifyToken(context.Background(), "valid")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", email)

	_, err = svc.VerifyToken(context.Background(), "revoked")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	admin.claims = map[string]any{}
	_, err = svc.VerifyToken(context.Background(), "valid")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestFirebaseAuth_SignOutAndUpdates(t *testing.T) {
	admin := newFakeFirebaseAdmin()
	svc := newTestFirebaseAuth(admin, nil)
	ctx := context.Background()

	require.NoError(t, svc.SignOut(ctx, "jane.doe@example.com"))
	assert.Equal(t, []string{"uid-1"}, admin.revoked)

	require.NoError(t, svc.UpdateEmail(ctx, "jane.doe@example.com", "jane.smith@example.com"))
	assert.NotNil(t, admin.updated["uid-1"])

	require.NoError(t, svc.UpdatePassword(ctx, "jane.doe@example.com", "newsecret"))

	err := svc.UpdatePassword(ctx, "nobody@example.com", "newsecret")
	assert.Error(t, err)
}

func TestFirebaseAuth_Reauthenticate(t *testing.T) {
	svc := newTestFirebaseAuth(newFakeFirebaseAdmin(), nil)
	assert.NoError(t, svc.Reauthenticate(context.Background(), "jane.doe@example.com", "secret"))

	failing := newTestFirebaseAuth(newFakeFirebaseAdmin(), errors.WithStack(domainerrors.ErrAuthFailed))
	err := failing.Reauthenticate(context.Background(), "jane.doe@example.com", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrAuthFailed))
}

func TestMapToolkitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "wrong password",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "INVALID_PASSWORD"},
			want: domainerrors.ErrAuthFailed,
		},
		{
			name: "unknown email",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "EMAIL_NOT_FOUND"},
			want: domainerrors.ErrAuthFailed,
		},
		{
			name: "throttled",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"},
			want: domainerrors.ErrTooManyAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(mapToolkitError(tt.err), tt.want))
		})
	}

	transport := mapToolkitError(errors.New("connection reset"))
	assert.False(t, errors.Is(transport, domainerrors.ErrAuthFailed))
}
