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

// CreateExpense records one expense from the form.
func CreateExpense(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	category := strings.TrimSpace(c.PostForm("category"))
	paymentMethod := strings.TrimSpace(c.PostForm("payment_method"))
	if title == "" || category == "" || paymentMethod == "" {
		redirectWithFlash(c, "/expense", "danger", "Title, category and payment method are required.")
		return
	}

	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		redirectWithFlash(c, "/expense", "danger", "Please enter a valid amount.")
		return
	}
	date, err := parseDate(c.PostForm("date"))
	if err != nil {
		redirectWithFlash(c, "/expense", "danger", "Please enter a valid date.")
		return
	}

	expense := &models.Expense{
		UserID:        claims.UserID,
		Title:         title,
		Amount:        amount,
		Category:      category,
		Date:          date,
		Description:   c.PostForm("description"),
		PaymentMethod: paymentMethod,
	}
	if err := db.CreateExpense(c.Request.Context(), expense); err != nil {
		logger.Get().Error("error creating expense", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save expense."})
		return
	}

	redirectWithFlash(c, "/expenses", "success", "Expense added successfully!")
}

// ListExpenses returns the user's expenses, newest first by default or by
// amount when ?sort=amount_high_low.
func ListExpenses(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sort := db.SortNewestFirst
	if c.Query("sort") == string(db.SortAmountHighLow) {
		sort = db.SortAmountHighLow
	}

	expenses, err := db.ListExpenses(c.Request.Context(), claims.UserID, sort)
	if err != nil {
		logger.Get().Error("error listing expenses", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load expenses."})
		return
	}

	user, err := db.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		logger.Get().Error("error loading user", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load user."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "user": user})
}

// DeleteExpense removes one expense by id. Ids belonging to other users
// match nothing and the request still succeeds.
func DeleteExpense(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || expenseID <= 0 {
		redirectWithFlash(c, "/expenses", "danger", "Invalid expense.")
		return
	}

	if err := db.DeleteExpense(c.Request.Context(), expenseID, claims.UserID); err != nil {
		logger.Get().Error("error deleting expense",
			zap.Int64("user_id", claims.UserID),
			zap.Int64("expense_id", expenseID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete expense."})
		return
	}

	redirectWithFlash(c, "/expenses", "info", "Expense deleted.")
}
