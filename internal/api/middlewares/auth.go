package middlewares

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/respond"
)

const userIDKey = "user_id"

var (
	errUnauthorized = errors.New("unauthorized")
	errNoSigningKey = errors.New("no signing key configured")
)

func bearerToken(c *gin.Context) (string, bool) {
	return strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
}

// CronAuth guards the job endpoints with a shared bearer secret. An empty
// secret leaves them open for deployments that restrict access at the network level.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(c)
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			zlog.Logger.Warn().Str("path", c.FullPath()).Msg("rejected job request with bad cron secret")
			respond.Fail(c.Writer, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}

// JWTAuth validates the hosted auth provider's HS256 access token and stores
// the subject as the user id. With an empty secret every token is rejected.
func JWTAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		zlog.Logger.Error().Msg("jwt secret is empty, user endpoints will reject all requests")
	}

	keyFunc := func(token *jwt.Token) (any, error) {
		if secret == "" {
			return nil, errNoSigningKey
		}
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok || tokenString == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			respond.Fail(c.Writer, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			respond.Fail(c.Writer, http.StatusUnauthorized, errUnauthorized)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the user authenticated by JWTAuth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

// SetUserID stores an authenticated user id. Used by JWTAuth and tests.
func SetUserID(c *gin.Context, id uuid.UUID) {
	c.Set(userIDKey, id)
}
