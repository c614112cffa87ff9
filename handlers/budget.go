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

// SaveBudget upserts the total monthly budget and replaces the per-category
// budgets, submitted as parallel category_name/category_amount fields.
func SaveBudget(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	totalBudget, err := parseAmount(c.PostForm("total_monthly_budget"))
	if err != nil {
		redirectWithFlash(c, "/budget", "danger", "Please enter a valid total monthly budget.")
		return
	}

	names := c.PostFormArray("category_name")
	amounts := c.PostFormArray("category_amount")
	budgets := []models.CategoryBudget{}
	seen := map[string]bool{}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if i >= len(amounts) || name == "" || strings.TrimSpace(amounts[i]) == "" {
			continue
		}
		if seen[name] {
			redirectWithFlash(c, "/budget", "danger", "Each category may only be budgeted once.")
			return
		}
		amount, err := parseAmount(amounts[i])
		if err != nil {
			redirectWithFlash(c, "/budget", "danger", "Please enter valid amounts for all category budgets.")
			return
		}
		seen[name] = true
		budgets = append(budgets, models.CategoryBudget{UserID: claims.UserID, CategoryName: name, Amount: amount})
	}

	budget := &models.Budget{UserID: claims.UserID, TotalMonthlyBudget: totalBudget}
	if err := db.UpsertBudget(c.Request.Context(), budget); err != nil {
		logger.Get().Error("error saving budget", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save budget."})
		return
	}

	if err := db.ReplaceCategoryBudgets(c.Request.Context(), claims.UserID, budgets); err != nil {
		logger.Get().Error("error saving category budgets", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save category budgets."})
		return
	}

	redirectWithFlash(c, "/expense", "success", "Budgets saved successfully! Now you can start adding expenses.")
}
