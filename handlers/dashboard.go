package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-tracker/api/db"
	"finance-tracker/api/logger"
	"finance-tracker/api/reports"
)

// GetDashboard returns the summary cards, goals, recent activity, alerts
// and quick-chart data for the signed-in user. Users with no income or
// budget rows get zeroes, not errors.
func GetDashboard(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	ctx := c.Request.Context()

	income, err := db.GetIncome(ctx, claims.UserID)
	if err != nil {
		logger.Get().Error("error loading income", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard."})
		return
	}
	budget, err := db.GetBudget(ctx, claims.UserID)
	if err != nil {
		logger.Get().Error("error loading budget", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard."})
		return
	}
	categoryBudgets, err := db.ListCategoryBudgets(ctx, claims.UserID)
	if err != nil {
		logger.Get().Error("error loading category budgets", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard."})
		return
	}
	expenses, err := db.ListExpenses(ctx, claims.UserID, db.SortNewestFirst)
	if err != nil {
		logger.Get().Error("error loading expenses", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard."})
		return
	}
	goals, err := db.ListGoals(ctx, claims.UserID)
	if err != nil {
		logger.Get().Error("error loading goals", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load dashboard."})
		return
	}

	summary := reports.BuildDashboard(income, budget, categoryBudgets, expenses, goals, time.Now())
	c.JSON(http.StatusOK, summary)
}
