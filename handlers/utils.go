package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finance-tracker/api/models"
)

// FlashCookie carries a one-shot notice for the next rendered page.
const FlashCookie = "flash"

// Flash is the message the view layer shows after a redirect.
type Flash struct {
	Level   string `json:"level"` // success, info, warning, danger
	Message string `json:"message"`
}

// currentUser reads the session claims placed by the auth middleware.
func currentUser(c *gin.Context) (*models.SessionClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := user.(*models.SessionClaims)
	return claims, ok
}

// setFlash stores the notice in a short-lived cookie the view layer reads
// and clears.
func setFlash(c *gin.Context, level, message string) {
	payload, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(FlashCookie, encoded, 60, "/", "", false, false)
}

// DecodeFlash reverses setFlash's encoding.
func DecodeFlash(value string) (Flash, error) {
	var flash Flash
	payload, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return flash, err
	}
	err = json.Unmarshal(payload, &flash)
	return flash, err
}

// redirectWithFlash is the common exit for form endpoints: set the notice,
// then send the browser on.
func redirectWithFlash(c *gin.Context, location, level, message string) {
	setFlash(c, level, message)
	c.Redirect(http.StatusSeeOther, location)
}

// parseAmount reads a non-negative monetary form value exactly, without
// passing through a float.
func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", value)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative")
	}
	return amount, nil
}

// parseDate reads a calendar date without time-of-day.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return date, nil
}
