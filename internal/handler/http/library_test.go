package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginAndGetCookies authenticates against the router and returns the session
// cookies for follow-up requests.
func loginAndGetCookies(t *testing.T, router http.Handler) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"ana","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// authedMocks returns auth mocks that accept any login and resolve user 7.
func authedMocks() *mockAuthService {
	return &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{ID: 7, Username: "ana"}, nil
		},
		userByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "ana"}, nil
		},
	}
}

// ─────────────────────────────────────────────
// GET /posts
// ─────────────────────────────────────────────

func TestListReviews_PageParam(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
	}{
		{name: "default", target: "/posts", wantPage: 1},
		{name: "explicit", target: "/posts?page=3", wantPage: 3},
		{name: "garbage falls back", target: "/posts?page=abc", wantPage: 1},
		{name: "negative falls back", target: "/posts?page=-2", wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			library := &mockLibraryService{
				listReviewsFn: func(_ context.Context, page int) ([]models.Review, error) {
					assert.Equal(t, tt.wantPage, page)
					return []models.Review{{ID: 1, Review: "great", Username: "ana", Title: "Dune"}}, nil
				},
			}
			router := newTestHandler(t, &mockAuthService{}, library).Init()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body models.ReviewsResponse
			decodeBody(t, rec, &body)
			require.Len(t, body.Reviews, 1)
			assert.Equal(t, "Dune", body.Reviews[0].Title)
		})
	}
}

// TestListReviews_EmptyPage verifies that a page past the end serializes as
// an empty array, not null.
func TestListReviews_EmptyPage(t *testing.T) {
	library := &mockLibraryService{
		listReviewsFn: func(_ context.Context, _ int) ([]models.Review, error) {
			return nil, nil
		},
	}
	router := newTestHandler(t, &mockAuthService{}, library).Init()

	req := httptest.NewRequest(http.MethodGet, "/posts?page=999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviews":[]}`, rec.Body.String())
}

func TestListReviews_StorageError(t *testing.T) {
	library := &mockLibraryService{
		listReviewsFn: func(_ context.Context, _ int) ([]models.Review, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := newTestHandler(t, &mockAuthService{}, library).Init()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ─────────────────────────────────────────────
// GET /notes
// ─────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	library := &mockLibraryService{
		listNotesFn: func(_ context.Context, filter models.NotesFilter) ([]models.Note, error) {
			assert.Equal(t, models.NotesFilter{BookID: 3, UserID: 7, Page: 2}, filter)
			return []models.Note{{ID: 1, Content: "reread chapter 3"}}, nil
		},
	}
	router := newTestHandler(t, &mockAuthService{}, library).Init()

	req := httptest.NewRequest(http.MethodGet, "/notes?book_id=3&user_id=7&page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.NotesResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Notes, 1)
	assert.Equal(t, "reread chapter 3", body.Notes[0].Content)
}

func TestListNotes_MissingFilter(t *testing.T) {
	library := &mockLibraryService{
		listNotesFn: func(_ context.Context, _ models.NotesFilter) ([]models.Note, error) {
			return nil, service.ErrInvalidDataProvided
		},
	}
	router := newTestHandler(t, &mockAuthService{}, library).Init()

	for _, target := range []string{"/notes", "/notes?book_id=3", "/notes?user_id=7"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target: %s", target)
	}
}

// ─────────────────────────────────────────────
// POST /add/
// ─────────────────────────────────────────────

func TestAddContribution_RequiresSession(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockLibraryService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/add/",
		strings.NewReader(`{"title":"Dune","review":"a classic"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, msgAuthRequired, body.Error)
}

func TestAddContribution_Success(t *testing.T) {
	var captured models.Contribution
	library := &mockLibraryService{
		addContributionFn: func(_ context.Context, contribution models.Contribution) error {
			captured = contribution
			return nil
		},
	}
	router := newTestHandler(t, authedMocks(), library).Init()
	cookies := loginAndGetCookies(t, router)

	req := httptest.NewRequest(http.MethodPost, "/add/",
		strings.NewReader(`{"title":"Dune","author":"Frank Herbert","review":"a classic","rating":5,"note":"reread"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, msgCreated, rec.Body.String())

	// the contributor comes from the session, never from the body
	assert.Equal(t, int64(7), captured.UserID)
	assert.Equal(t, "Dune", captured.Title)
	assert.Equal(t, 5, captured.Rating)
}

func TestAddContribution_NothingToAdd(t *testing.T) {
	library := &mockLibraryService{
		addContributionFn: func(_ context.Context, _ models.Contribution) error {
			return service.ErrNothingToAdd
		},
	}
	router := newTestHandler(t, authedMocks(), library).Init()
	cookies := loginAndGetCookies(t, router)

	req := httptest.NewRequest(http.MethodPost, "/add/", strings.NewReader(`{"title":"Dune"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, msgNothingToAdd, body.Error)
}

func TestAddContribution_InvalidJSON(t *testing.T) {
	router := newTestHandler(t, authedMocks(), &mockLibraryService{}).Init()
	cookies := loginAndGetCookies(t, router)

	req := httptest.NewRequest(http.MethodPost, "/add/", strings.NewReader("{broken"))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddContribution_StorageError(t *testing.T) {
	library := &mockLibraryService{
		addContributionFn: func(_ context.Context, _ models.Contribution) error {
			return errors.New("connection refused")
		},
	}
	router := newTestHandler(t, authedMocks(), library).Init()
	cookies := loginAndGetCookies(t, router)

	req := httptest.NewRequest(http.MethodPost, "/add/",
		strings.NewReader(`{"title":"Dune","review":"a classic"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ─────────────────────────────────────────────
// GET /health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockLibraryService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test-version"}`, rec.Body.String())
}
