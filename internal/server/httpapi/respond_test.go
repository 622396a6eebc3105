package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

// ── helpers ─────────────────────────────────────────────────────────

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ── mapErr ──────────────────────────────────────────────────────────

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Unauthenticated", errdefs.ErrUnauthenticated, http.StatusUnauthorized},
		{"TokenExpired", errdefs.ErrTokenExpired, http.StatusUnauthorized},
		{"TokenMalformed", errdefs.ErrTokenMalformed, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotEnrolled", errdefs.ErrNotEnrolled, http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"Validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"InvalidDueDate", errdefs.ErrInvalidDueDate, http.StatusBadRequest},
		{"InvalidGrade", errdefs.ErrInvalidGrade, http.StatusBadRequest},
		{"DeadlinePassed", errdefs.ErrDeadlinePassed, http.StatusBadRequest},
		{"AlreadyEnrolled", errdefs.ErrAlreadyEnrolled, http.StatusBadRequest},
		{"AlreadyExists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"WrappedValidation", fmt.Errorf("%w: title is required", errdefs.ErrValidation), http.StatusBadRequest},
		{"UnknownError", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

// ── writeErrorJSON ──────────────────────────────────────────────────

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "test error", body["error"])
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/classes", nil)

	writeError(w, r, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "internal server error")
}

// ── decodeJSON ──────────────────────────────────────────────────────

func TestDecodeJSON(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/classes", strings.NewReader(`{"name":"Algebra"}`))

		var body struct {
			Name string `json:"name"`
		}
		err := decodeJSON(r, &body)
		require.NoError(t, err)
		assert.Equal(t, "Algebra", body.Name)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/classes", strings.NewReader("{invalid"))

		var body struct{}
		err := decodeJSON(r, &body)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

// ── parseUUIDParam ──────────────────────────────────────────────────

func TestParseUUIDParam(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		want := uuid.New()
		r := httptest.NewRequest(http.MethodGet, "/api/classes/"+want.String(), nil)
		r = withChiParam(r, "classId", want.String())

		got, err := parseUUIDParam(r, "classId")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("NotAUUID", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/classes/abc", nil)
		r = withChiParam(r, "classId", "abc")

		_, err := parseUUIDParam(r, "classId")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/classes/", nil)

		_, err := parseUUIDParam(r, "classId")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

// ── bearerToken ─────────────────────────────────────────────────────

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"Valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"CaseInsensitiveScheme", "bearer abc", "abc", true},
		{"MissingHeader", "", "", false},
		{"WrongScheme", "Basic dXNlcg==", "", false},
		{"NoToken", "Bearer", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			token, ok := bearerToken(r)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

// ── classCacheKey ───────────────────────────────────────────────────

func TestClassCacheKey(t *testing.T) {
	classID := uuid.New()
	principalID := uuid.New()

	key := classCacheKey(classID, principalID)
	assert.Equal(t, "class:"+classID.String()+":u:"+principalID.String(), key)

	// Two principals never share a cached view of the same class.
	other := classCacheKey(classID, uuid.New())
	assert.NotEqual(t, key, other)
}
