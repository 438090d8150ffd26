package middlewares

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

const testSecret = "test-secret-key-for-unit-tests"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) {
		id, _ := UserID(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func serve(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestJWTAuth(t *testing.T) {
	r := newRouter(JWTAuth(testSecret))
	userID := uuid.New()

	valid := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	w := serve(r, "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestJWTAuth_Rejects(t *testing.T) {
	r := newRouter(JWTAuth(testSecret))

	expired := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signToken(t, jwt.SigningMethodHS256, "other-secret", jwt.RegisteredClaims{Subject: uuid.NewString()})
	badSubject := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "not-a-uuid"})

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage":        "Bearer abc.def.ghi",
		"expired":        "Bearer " + expired,
		"wrong key":      "Bearer " + wrongKey,
		"bad subject":    "Bearer " + badSubject,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := serve(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuth_EmptySecretRejectsEverything(t *testing.T) {
	r := newRouter(JWTAuth(""))
	victim := uuid.New()

	forged := signToken(t, jwt.SigningMethodHS256, "", jwt.RegisteredClaims{
		Subject:   victim.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	w := serve(r, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), victim.String())
}

func TestCronAuth(t *testing.T) {
	r := newRouter(CronAuth("cron-secret"))

	assert.Equal(t, http.StatusOK, serve(r, "Bearer cron-secret").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
}

func TestCronAuth_NoSecretConfigured(t *testing.T) {
	r := newRouter(CronAuth(""))

	assert.Equal(t, http.StatusOK, serve(r, "").Code)
}
