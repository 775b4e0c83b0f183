package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type resolverStub struct {
	accept   string
	identity model.Identity
}

func (s *resolverStub) Authenticate(context.Context, string, string) (model.TokenResult, error) {
	return model.TokenResult{}, apperrors.ErrInvalidCredentials
}

func (s *resolverStub) Register(context.Context, dto.CreateUserDTO) (model.User, error) {
	return model.User{}, apperrors.ErrInvalidArgument
}

func (s *resolverStub) Resolve(_ context.Context, raw string) (model.Identity, error) {
	if raw == s.accept {
		return s.identity, nil
	}
	return model.Identity{}, apperrors.ErrInvalidToken
}

func (s *resolverStub) Logout(context.Context, string) error { return nil }

func newProtected(svc *resolverStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", middleware.Auth(svc), func(c *gin.Context) {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": id.Subject, "token": middleware.CurrentToken(c)})
	})
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	svc := &resolverStub{accept: "tok", identity: model.Identity{Subject: "john", ID: 1}}
	router := newProtected(svc)

	w := get(router, "Bearer tok")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"subject":"john"`)
	require.Contains(t, w.Body.String(), `"token":"tok"`)

	// Scheme comparison is case-insensitive.
	w = get(router, "bearer tok")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	svc := &resolverStub{accept: "tok"}
	router := newProtected(svc)

	for name, header := range map[string]string{
		"missing":      "",
		"no scheme":    "tok",
		"wrong scheme": "Basic tok",
		"empty token":  "Bearer ",
		"bad token":    "Bearer nope",
	} {
		w := get(router, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, name)
		require.JSONEq(t, `{"error": "not authenticated"}`, w.Body.String(), name)
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimitPerIP(1, 2, 16, time.Hour))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, hit("10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, hit("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1234"))

	// A different client has its own bucket.
	require.Equal(t, http.StatusOK, hit("10.0.0.2:1234"))
}
