package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/api/db"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
)

// SaveInvestment adds or deletes an investment depending on the submitted
// action field.
func SaveInvestment(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	switch c.PostForm("action") {
	case "delete":
		investmentID, err := strconv.ParseInt(c.PostForm("investment_id"), 10, 64)
		if err != nil || investmentID <= 0 {
			redirectWithFlash(c, "/investments", "danger", "Invalid investment.")
			return
		}
		if err := db.DeleteInvestment(c.Request.Context(), investmentID, claims.UserID); err != nil {
			logger.Get().Error("error deleting investment",
				zap.Int64("user_id", claims.UserID),
				zap.Int64("investment_id", investmentID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete investment."})
			return
		}
		redirectWithFlash(c, "/investments", "info", "Investment deleted.")

	default: // add
		name := strings.TrimSpace(c.PostForm("investment_name"))
		investmentType := strings.TrimSpace(c.PostForm("investment_type"))
		if name == "" || investmentType == "" {
			redirectWithFlash(c, "/investments", "danger", "Name and type are required.")
			return
		}
		amount, err := parseAmount(c.PostForm("amount_invested"))
		if err != nil {
			redirectWithFlash(c, "/investments", "danger", "Please enter a valid amount.")
			return
		}
		date, err := parseDate(c.PostForm("investment_date"))
		if err != nil {
			redirectWithFlash(c, "/investments", "danger", "Please enter a valid date.")
			return
		}

		investment := &models.Investment{
			UserID:         claims.UserID,
			Name:           name,
			AmountInvested: amount,
			Type:           investmentType,
			Date:           date,
		}
		if err := db.CreateInvestment(c.Request.Context(), investment); err != nil {
			logger.Get().Error("error creating investment", zap.Int64("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save investment."})
			return
		}
		redirectWithFlash(c, "/investments", "success", "Investment added successfully!")
	}
}

// ListInvestments returns the user's investments, newest first.
func ListInvestments(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	investments, err := db.ListInvestments(c.Request.Context(), claims.UserID)
	if err != nil {
		logger.Get().Error("error listing investments", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load investments."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}
