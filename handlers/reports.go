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

// ComprehensiveReport returns the consolidated six-section report object
// backing the reports page charts.
func ComprehensiveReport(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	ctx := c.Request.Context()

	income, err := db.GetIncome(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "income", err)
		return
	}
	otherIncomes, err := db.ListOtherIncomes(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "other incomes", err)
		return
	}
	categoryBudgets, err := db.ListCategoryBudgets(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "category budgets", err)
		return
	}
	expenses, err := db.ListExpenses(ctx, claims.UserID, db.SortNewestFirst)
	if err != nil {
		reportError(c, claims.UserID, "expenses", err)
		return
	}
	investments, err := db.ListInvestments(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "investments", err)
		return
	}
	assets, err := db.ListAssets(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "assets", err)
		return
	}
	liabilities, err := db.ListLiabilities(ctx, claims.UserID)
	if err != nil {
		reportError(c, claims.UserID, "liabilities", err)
		return
	}

	report := reports.BuildComprehensiveReport(
		income, otherIncomes, categoryBudgets, expenses, investments, assets, liabilities, time.Now())
	c.JSON(http.StatusOK, report)
}

func reportError(c *gin.Context, userID int64, section string, err error) {
	logger.Get().Error("error loading report data",
		zap.Int64("user_id", userID),
		zap.String("section", section),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build report."})
}
