package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"finance-tracker/api/logger"
	"finance-tracker/api/models"
)

// SessionCookie names the signed session cookie issued at signin.
const SessionCookie = "session_token"

// SessionTTL bounds how long an issued session stays valid.
const SessionTTL = 24 * time.Hour

func sessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable not set")
	}
	return []byte(secret), nil
}

// IssueSessionToken signs a session for the given user.
func IssueSessionToken(userID int64, email string, now time.Time) (string, error) {
	secret, err := sessionSecret()
	if err != nil {
		return "", err
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
		UserID: userID,
		Email:  email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return sessionSecret()
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// SessionMiddleware gates protected routes. Browser requests without a
// valid session are sent to /signin; API requests get 401 JSON. Handlers
// read the authenticated user from the request context, never from any
// global.
func SessionMiddleware(c *gin.Context) {
	tokenString, err := c.Cookie(SessionCookie)
	if err != nil || tokenString == "" {
		rejectUnauthenticated(c)
		return
	}

	claims, err := ParseSessionToken(tokenString)
	if err != nil {
		logger.Get().Debug("rejected session token", zap.Error(err))
		rejectUnauthenticated(c)
		return
	}

	c.Set("user", claims)
	c.Next()
}

func rejectUnauthenticated(c *gin.Context) {
	if wantsHTML(c.Request) {
		c.Redirect(http.StatusSeeOther, "/signin")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in to view this page."})
	}
	c.Abort()
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
