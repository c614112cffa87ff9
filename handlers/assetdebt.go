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
	"finance-tracker/api/reports"
)

// SaveAssetDebt adds or deletes an asset or liability, selected by the
// form_type and action fields.
func SaveAssetDebt(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	formType := c.PostForm("form_type")
	if formType != "asset" && formType != "liability" {
		redirectWithFlash(c, "/assets-debts", "danger", "Unknown entry type.")
		return
	}

	if c.PostForm("action") == "delete" {
		itemID, err := strconv.ParseInt(c.PostForm("item_id"), 10, 64)
		if err != nil || itemID <= 0 {
			redirectWithFlash(c, "/assets-debts", "danger", "Invalid entry.")
			return
		}
		if formType == "asset" {
			err = db.DeleteAsset(c.Request.Context(), itemID, claims.UserID)
		} else {
			err = db.DeleteLiability(c.Request.Context(), itemID, claims.UserID)
		}
		if err != nil {
			logger.Get().Error("error deleting "+formType,
				zap.Int64("user_id", claims.UserID),
				zap.Int64("item_id", itemID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete entry."})
			return
		}
		notice := "Asset deleted."
		if formType == "liability" {
			notice = "Liability deleted."
		}
		redirectWithFlash(c, "/assets-debts", "info", notice)
		return
	}

	if formType == "asset" {
		name := strings.TrimSpace(c.PostForm("asset_name"))
		value, err := parseAmount(c.PostForm("value"))
		if name == "" || err != nil {
			redirectWithFlash(c, "/assets-debts", "danger", "Please enter a valid asset name and value.")
			return
		}
		asset := &models.Asset{UserID: claims.UserID, Name: name, Value: value}
		if err := db.CreateAsset(c.Request.Context(), asset); err != nil {
			logger.Get().Error("error creating asset", zap.Int64("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save asset."})
			return
		}
		redirectWithFlash(c, "/assets-debts", "success", "Asset added!")
		return
	}

	name := strings.TrimSpace(c.PostForm("liability_name"))
	amountOwed, err := parseAmount(c.PostForm("amount_owed"))
	if name == "" || err != nil {
		redirectWithFlash(c, "/assets-debts", "danger", "Please enter a valid liability name and amount.")
		return
	}
	liability := &models.Liability{UserID: claims.UserID, Name: name, AmountOwed: amountOwed}
	if err := db.CreateLiability(c.Request.Context(), liability); err != nil {
		logger.Get().Error("error creating liability", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save liability."})
		return
	}
	redirectWithFlash(c, "/assets-debts", "success", "Liability added!")
}

// ListAssetsDebts returns both lists with the derived net worth.
func ListAssetsDebts(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	assets, err := db.ListAssets(c.Request.Context(), claims.UserID)
	if err != nil {
		logger.Get().Error("error listing assets", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load assets."})
		return
	}
	liabilities, err := db.ListLiabilities(c.Request.Context(), claims.UserID)
	if err != nil {
		logger.Get().Error("error listing liabilities", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load liabilities."})
		return
	}

	netWorth, _ := reports.NetWorth(assets, liabilities).Float64()
	c.JSON(http.StatusOK, gin.H{
		"assets":      assets,
		"liabilities": liabilities,
		"net_worth":   netWorth,
	})
}
