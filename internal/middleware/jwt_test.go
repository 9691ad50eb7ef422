package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/barakahq/supportbot/internal/pkg/jwt"
)

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/faqs", nil)

	JWTAuth([]byte("secret"))(c)
	require.True(t, c.IsAborted())
}

func TestJWTAuthAcceptsBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token, err := jwt.GenerateToken("admin", "admin", []byte("secret"), time.Hour)
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/faqs", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	JWTAuth([]byte("secret"))(c)
	require.False(t, c.IsAborted())
	require.Equal(t, "admin", c.GetString(ContextUsernameKey))
	require.Equal(t, "admin", c.GetString(ContextRoleKey))
}

func TestJWTAuthRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/faqs", nil)
	c.Request.Header.Set("Authorization", "Bearer not-a-token")

	JWTAuth([]byte("secret"))(c)
	require.True(t, c.IsAborted())
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/chatlogs", nil)
	c.Set(ContextRoleKey, "user")
	AdminOnly()(c)
	require.True(t, c.IsAborted())

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest("GET", "/api/v1/chatlogs", nil)
	c2.Set(ContextRoleKey, "admin")
	AdminOnly()(c2)
	require.False(t, c2.IsAborted())
}
