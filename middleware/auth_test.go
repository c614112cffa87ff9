package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"finance-tracker/api/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := IssueSessionToken(42, "tester@example.com", time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "tester@example.com" {
		t.Errorf("Email = %s, want tester@example.com", claims.Email)
	}
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := IssueSessionToken(42, "tester@example.com", time.Now().Add(-2*SessionTTL))
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}
	if _, err := ParseSessionToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	if _, err := ParseSessionToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestIssueSessionTokenWithoutSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := IssueSessionToken(1, "a@b.co", time.Now()); err == nil {
		t.Error("expected error when SESSION_SECRET is unset")
	}
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware)
	router.GET("/dashboard", func(c *gin.Context) {
		claims := c.MustGet("user").(*models.SessionClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router
}

func TestSessionMiddlewareRedirectsBrowsers(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rr := httptest.NewRecorder()
	protectedRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if loc := rr.Header().Get("Location"); loc != "/signin" {
		t.Errorf("Location = %q, want /signin", loc)
	}
}

func TestSessionMiddlewareRejectsAPIClients(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	protectedRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestSessionMiddlewareAcceptsValidCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := IssueSessionToken(7, "tester@example.com", time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rr := httptest.NewRecorder()
	protectedRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestSessionMiddlewareRejectsTamperedToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := IssueSessionToken(7, "tester@example.com", time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}
	t.Setenv("SESSION_SECRET", "a-different-secret")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rr := httptest.NewRecorder()
	protectedRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
