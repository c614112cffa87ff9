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

// AddGoal records a financial goal from the dashboard form.
func AddGoal(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalName := strings.TrimSpace(c.PostForm("goal_name"))
	goalType := strings.TrimSpace(c.PostForm("goal_type"))
	if goalName == "" || goalType == "" {
		redirectWithFlash(c, "/dashboard", "danger", "Goal name and type are required.")
		return
	}
	targetAmount, err := parseAmount(c.PostForm("target_amount"))
	if err != nil {
		redirectWithFlash(c, "/dashboard", "danger", "Please enter a valid target amount.")
		return
	}

	goal := &models.FinancialGoal{
		UserID:       claims.UserID,
		GoalName:     goalName,
		TargetAmount: targetAmount,
		GoalType:     goalType,
	}
	if err := db.CreateGoal(c.Request.Context(), goal); err != nil {
		logger.Get().Error("error creating goal", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save goal."})
		return
	}

	redirectWithFlash(c, "/dashboard", "success", "Financial goal added!")
}

// DeleteGoal removes one goal by id. A goal id owned by a different user
// matches nothing; the redirect is the same either way.
func DeleteGoal(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	goalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || goalID <= 0 {
		redirectWithFlash(c, "/dashboard", "danger", "Invalid goal.")
		return
	}

	if err := db.DeleteGoal(c.Request.Context(), goalID, claims.UserID); err != nil {
		logger.Get().Error("error deleting goal",
			zap.Int64("user_id", claims.UserID),
			zap.Int64("goal_id", goalID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete goal."})
		return
	}

	redirectWithFlash(c, "/dashboard", "info", "Goal removed.")
}
