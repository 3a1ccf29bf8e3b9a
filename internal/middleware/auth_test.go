package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter(t *testing.T, adminOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(testSecret)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		id, ok := UserID(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	router := newProtectedRouter(t, false)
	token, err := GenerateToken(testSecret, uuid.New(), "student")
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router := newProtectedRouter(t, false)
	rec := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	router := newProtectedRouter(t, false)
	token, err := GenerateToken("other-secret", uuid.New(), "student")
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsStudent(t *testing.T) {
	router := newProtectedRouter(t, true)
	token, err := GenerateToken(testSecret, uuid.New(), "student")
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAcceptsAdmin(t *testing.T) {
	router := newProtectedRouter(t, true)
	token, err := GenerateToken(testSecret, uuid.New(), RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)
}
