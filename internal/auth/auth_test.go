package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Middleware(secret), func(c *gin.Context) {
		id, err := UserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func do(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(secret, userID, time.Hour)
	require.NoError(t, err)

	w := do(newRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestMiddleware_Rejects(t *testing.T) {
	userID := uuid.New()
	expired, err := IssueToken(secret, userID, -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken("other-secret", userID, time.Hour)
	require.NoError(t, err)
	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"}).SignedString([]byte(secret))
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"no header":      "",
		"not bearer":     "Basic abc",
		"empty token":    "Bearer ",
		"garbage":        "Bearer not-a-jwt",
		"expired":        "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
		"subject format": "Bearer " + notUUID,
		"alg none":       "Bearer " + unsigned,
	}

	r := newRouter()
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, do(r, header).Code)
		})
	}
}

func TestUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := UserID(c)
	assert.Error(t, err)
}
