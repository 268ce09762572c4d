package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondohomes/marketplace/internal/core/domain"
	"github.com/ondohomes/marketplace/internal/core/ports"
)

type stubSessionService struct {
	signInFn  func(ctx context.Context) (*domain.User, error)
	restoreFn func(ctx context.Context) (*domain.User, error)
	updateFn  func(ctx context.Context, patch ports.ProfilePatch) (*domain.User, error)
	signOutFn func(ctx context.Context) error
}

func (s *stubSessionService) SignIn(ctx context.Context) (*domain.User, error) {
	return s.signInFn(ctx)
}

func (s *stubSessionService) Restore(ctx context.Context) (*domain.User, error) {
	return s.restoreFn(ctx)
}

func (s *stubSessionService) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (*domain.User, error) {
	return s.updateFn(ctx, patch)
}

func (s *stubSessionService) SignOut(ctx context.Context) error {
	return s.signOutFn(ctx)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionHandler_SignIn(t *testing.T) {
	stub := &stubSessionService{
		signInFn: func(context.Context) (*domain.User, error) {
			return &domain.User{ID: "mock-user-123", Name: "John Doe", Membership: domain.TierSilver}, nil
		},
	}
	h := NewSessionHandler(stub)
	c, rec := newTestContext(t, http.MethodPost, "/v1/session", "")

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "mock-user-123", user.ID)
	assert.Equal(t, domain.TierSilver, user.Membership)
}

func TestSessionHandler_Current_NoSession(t *testing.T) {
	stub := &stubSessionService{
		restoreFn: func(context.Context) (*domain.User, error) {
			return nil, domain.ErrNoActiveSession
		},
	}
	h := NewSessionHandler(stub)
	c, _ := newTestContext(t, http.MethodGet, "/v1/session", "")

	err := h.Current(c)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestSessionHandler_UpdateProfile_ForwardsPatch(t *testing.T) {
	var got ports.ProfilePatch
	stub := &stubSessionService{
		updateFn: func(_ context.Context, patch ports.ProfilePatch) (*domain.User, error) {
			got = patch
			return &domain.User{ID: "mock-user-123", Username: *patch.Username}, nil
		},
	}
	h := NewSessionHandler(stub)
	c, rec := newTestContext(t, http.MethodPatch, "/v1/session/profile", `{"username":"newhandle"}`)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got.Username)
	assert.Equal(t, "newhandle", *got.Username)
	assert.Nil(t, got.Phone, "unset fields must stay nil")
}

func TestSessionHandler_SignOut(t *testing.T) {
	called := false
	stub := &stubSessionService{
		signOutFn: func(context.Context) error {
			called = true
			return nil
		},
	}
	h := NewSessionHandler(stub)
	c, rec := newTestContext(t, http.MethodDelete, "/v1/session", "")

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}
