package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/api/db"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
)

// SaveIncome upserts the monthly income and replaces the extra income
// sources, submitted as parallel source_name/source_amount fields. All
// input is validated before anything is written.
func SaveIncome(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	monthlyIncome, err := parseAmount(c.PostForm("monthly_income"))
	if err != nil {
		redirectWithFlash(c, "/income", "danger", "Please enter a valid monthly income.")
		return
	}
	currency := strings.TrimSpace(c.PostForm("currency"))
	if currency == "" {
		currency = "$"
	}

	names := c.PostFormArray("source_name")
	amounts := c.PostFormArray("source_amount")
	sources := []models.OtherIncome{}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if i >= len(amounts) || name == "" || strings.TrimSpace(amounts[i]) == "" {
			continue
		}
		amount, err := parseAmount(amounts[i])
		if err != nil {
			redirectWithFlash(c, "/income", "danger", "Please enter valid amounts for all income sources.")
			return
		}
		sources = append(sources, models.OtherIncome{UserID: claims.UserID, SourceName: name, Amount: amount})
	}

	income := &models.Income{UserID: claims.UserID, MonthlyIncome: monthlyIncome, Currency: currency}
	if err := db.UpsertIncome(c.Request.Context(), income); err != nil {
		logger.Get().Error("error saving income", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save income."})
		return
	}

	if err := db.ReplaceOtherIncomes(c.Request.Context(), claims.UserID, sources); err != nil {
		logger.Get().Error("error saving other incomes", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save income sources."})
		return
	}

	redirectWithFlash(c, "/budget", "success", "Income details saved.")
}
