// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shelfnotes Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/internal/session"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
	"github.com/shelfnotes/shelfnotes-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody unmarshals a recorded JSON response body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// sessionCookie returns the session cookie set on the recorded response, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration returns 200 with
// the username and establishes a session in the same response.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, u models.User) (models.User, error) {
			u.ID = 7
			return u, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"username":"ana","email":"ana@example.com","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "ana", body.Username)

	require.NotNil(t, sessionCookie(rec), "registration must establish a session")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidJSON)
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"ana"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestRegister_DuplicateUser(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"username":"ana","email":"ana@example.com","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, msgDuplicateUser, body.Error)
}

func TestRegister_StorageError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"username":"ana","email":"ana@example.com","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// raw errors must not leak into the response body
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			assert.Equal(t, "ana", c.Username)
			assert.Equal(t, "s3cret", c.Password)
			return models.User{ID: 7, Username: "ana"}, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"ana","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "ana", body.Username)

	require.NotNil(t, sessionCookie(rec))
}

// TestLogin_FailureReasons verifies the two distinct 401 reasons and that no
// session is established on either.
func TestLogin_FailureReasons(t *testing.T) {
	tests := []struct {
		name      string
		loginErr  error
		wantError string
	}{
		{name: "unknown user", loginErr: store.ErrNoUserWasFound, wantError: msgUserNotFound},
		{name: "wrong password", loginErr: service.ErrWrongPassword, wantError: msgWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}
			h := newTestHandler(t, auth, &mockLibraryService{})

			req := httptest.NewRequest(http.MethodPost, "/login",
				strings.NewReader(`{"username":"ana","password":"bad"}`))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body models.AuthResponse
			decodeBody(t, rec, &body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)

			assert.Nil(t, sessionCookie(rec), "failed login must not establish a session")
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout / current-user
// ─────────────────────────────────────────────

// TestLogout_EndsSession walks the full cycle through the router: login,
// verify current-user sees the session, logout, verify it is gone.
func TestLogout_EndsSession(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{ID: 7, Username: "ana"}, nil
		},
		userByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "ana"}, nil
		},
	}
	router := newTestHandler(t, auth, &mockLibraryService{}).Init()

	// login
	loginReq := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"ana","password":"s3cret"}`))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)
	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// current-user sees the session
	cuReq := httptest.NewRequest(http.MethodGet, "/current-user", nil)
	for _, c := range cookies {
		cuReq.AddCookie(c)
	}
	cuRec := httptest.NewRecorder()
	router.ServeHTTP(cuRec, cuReq)

	var current models.CurrentUserResponse
	decodeBody(t, cuRec, &current)
	require.True(t, current.LoggedIn)
	require.Equal(t, "ana", current.Username)

	// logout
	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range cookies {
		logoutReq.AddCookie(c)
	}
	logoutRec := httptest.NewRecorder()
	router.ServeHTTP(logoutRec, logoutReq)
	require.Equal(t, http.StatusOK, logoutRec.Code)

	// the old cookie no longer authenticates
	afterReq := httptest.NewRequest(http.MethodGet, "/current-user", nil)
	for _, c := range cookies {
		afterReq.AddCookie(c)
	}
	afterRec := httptest.NewRecorder()
	router.ServeHTTP(afterRec, afterReq)

	var after models.CurrentUserResponse
	decodeBody(t, afterRec, &after)
	assert.False(t, after.LoggedIn)
	assert.Empty(t, after.Username)
}

func TestCurrentUser_Anonymous(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockLibraryService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/current-user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CurrentUserResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.LoggedIn)
	assert.Empty(t, body.Username)
}

func TestLogout_WithoutSession(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockLibraryService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
