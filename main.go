package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"finance-tracker/api/db"
	"finance-tracker/api/handlers"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Monetary amounts serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.InitDB(); err != nil {
		logger.Get().Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	if err := db.CreateTables(); err != nil {
		logger.Get().Fatal("failed to create tables", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger)
	router.Use(middleware.CorsMiddleware)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/signup", handlers.Signup)
	router.POST("/signin", handlers.Signin)
	router.GET("/logout", handlers.Logout)

	protected := router.Group("/")
	protected.Use(middleware.SessionMiddleware)
	{
		protected.POST("/income", handlers.SaveIncome)
		protected.POST("/budget", handlers.SaveBudget)
		protected.POST("/expense", handlers.CreateExpense)
		protected.GET("/expenses", handlers.ListExpenses)
		protected.POST("/delete-expense/:id", handlers.DeleteExpense)
		protected.GET("/investments", handlers.ListInvestments)
		protected.POST("/investments", handlers.SaveInvestment)
		protected.GET("/assets-debts", handlers.ListAssetsDebts)
		protected.POST("/assets-debts", handlers.SaveAssetDebt)
		protected.POST("/add-goal", handlers.AddGoal)
		protected.POST("/delete-goal/:id", handlers.DeleteGoal)
		protected.POST("/upload-profile-picture", handlers.UploadProfilePicture)
		protected.GET("/dashboard", handlers.GetDashboard)
		protected.GET("/api/comprehensive-report", handlers.ComprehensiveReport)
		protected.POST("/api/chat", handlers.Chat)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
