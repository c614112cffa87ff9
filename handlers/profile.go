package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"finance-tracker/api/db"
	"finance-tracker/api/logger"
)

// UploadProfilePicture stores the uploaded image under a random filename
// and records its relative path on the user row.
func UploadProfilePicture(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := c.FormFile("profile_pic")
	if err != nil {
		redirectWithFlash(c, "/dashboard", "danger", "No selected file.")
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join("static", "uploads", "profile_pics")
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Get().Error("error creating upload dir", zap.String("dir", uploadDir), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store file."})
		return
	}

	// Random name; the original extension is kept so the file serves with
	// the right content type.
	filename := uuid.NewString() + filepath.Ext(filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		logger.Get().Error("error saving upload", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store file."})
		return
	}

	dbPath := "uploads/profile_pics/" + filename
	if err := db.UpdateProfilePicture(c.Request.Context(), claims.UserID, dbPath); err != nil {
		logger.Get().Error("error recording profile picture", zap.Int64("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile."})
		return
	}

	redirectWithFlash(c, "/dashboard", "success", "Profile picture updated!")
}
