package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func adminProbe(t *testing.T) (http.Handler, *bool) {
	t.Helper()

	var sawAdmin bool
	handler := RequireAdmin(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &sawAdmin
}

func TestRequireAdminAcceptsMintedToken(t *testing.T) {
	token, err := MintAdminToken(testSecret)
	require.NoError(t, err)

	handler, sawAdmin := adminProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *sawAdmin)
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	handler, sawAdmin := adminProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *sawAdmin)
}

func TestRequireAdminRejectsForeignToken(t *testing.T) {
	token, err := MintAdminToken("some-other-secret")
	require.NoError(t, err)

	handler, _ := adminProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(context.Background()))
	assert.True(t, IsAdmin(WithAdmin(context.Background())))
}
