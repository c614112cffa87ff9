package handlers

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"finance-tracker/api/db"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
)

// Signup registers a new account and signs the user straight in, sending
// them to the income step of onboarding.
func Signup(c *gin.Context) {
	fullName := strings.TrimSpace(c.PostForm("full_name"))
	email := strings.TrimSpace(strings.ToLower(c.PostForm("email")))
	password := c.PostForm("password")

	if fullName == "" || email == "" || password == "" {
		redirectWithFlash(c, "/signup", "danger", "All fields are required.")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		redirectWithFlash(c, "/signup", "danger", "Invalid email address.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Get().Error("error hashing password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account."})
		return
	}

	userID, err := db.CreateUser(c.Request.Context(), fullName, email, string(hash))
	if err != nil {
		if err == db.ErrEmailTaken {
			redirectWithFlash(c, "/signup", "danger", "Email address already registered.")
			return
		}
		logger.Get().Error("error creating user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account."})
		return
	}

	if err := issueSession(c, userID, email); err != nil {
		logger.Get().Error("error issuing session", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session."})
		return
	}

	logger.Get().Info("user registered", zap.Int64("user_id", userID))
	redirectWithFlash(c, "/income", "success", "Account created! Let's start with your income.")
}

// Signin validates credentials and issues the session cookie.
func Signin(c *gin.Context) {
	email := strings.TrimSpace(strings.ToLower(c.PostForm("email")))
	password := c.PostForm("password")

	user, err := db.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Get().Error("error looking up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed."})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		redirectWithFlash(c, "/signin", "danger", "Invalid email or password.")
		return
	}

	if err := issueSession(c, user.ID, user.Email); err != nil {
		logger.Get().Error("error issuing session", zap.Int64("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session."})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	redirectWithFlash(c, "/", "info", "You have been logged out.")
}

func issueSession(c *gin.Context, userID int64, email string) error {
	token, err := middleware.IssueSessionToken(userID, email, time.Now())
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionTTL.Seconds()), "/", "", false, true)
	return nil
}
