package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuth_RejectsMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RejectsMalformedHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", raw)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header=%q", raw)
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var gotID string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
	var gotID string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "external-id")
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	assert.Equal(t, "external-id", gotID)
	assert.Equal(t, "external-id", rec.Header().Get(RequestIDHeader))
}
