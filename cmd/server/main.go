package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafisyahdn/go-dubbing-backend/internal/api/handlers"
	"github.com/rafisyahdn/go-dubbing-backend/internal/api/middleware"
	"github.com/rafisyahdn/go-dubbing-backend/internal/config"
	"github.com/rafisyahdn/go-dubbing-backend/internal/performance"
	"github.com/rafisyahdn/go-dubbing-backend/internal/repository"
	"github.com/rafisyahdn/go-dubbing-backend/internal/service"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}

	dbCfg := &repository.DBConfig{
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Name: cfg.DBName,
	}

	// INIT DB
	repo, err := repository.NewPostgresRepoFromConfig(dbCfg)
	if err != nil {
		log.Fatal("failed connect db:", err)
	}

	// MIGRATIONS
	if err := repo.RunMigrations(context.Background()); err != nil {
		log.Fatal("migration error:", err)
	}

	userStore, err := repository.NewUserStore(dbCfg)
	if err != nil {
		log.Fatal("failed init user store:", err)
	}

	// ADMIN SEED
	hashed, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err := repo.UpsertAdmin(context.Background(), cfg.AdminUsername, string(hashed)); err != nil {
		log.Println("failed seeding admin:", err)
	} else {
		log.Println("admin seeded OK")
	}

	// SERVICES
	rates := performance.RateTable{
		EntryLevel:     decimal.NewFromFloat(cfg.RateEntryLevel),
		MidLevel:       decimal.NewFromFloat(cfg.RateMidLevel),
		SeniorLevel:    decimal.NewFromFloat(cfg.RateSeniorLevel),
		FlatCommission: decimal.NewFromFloat(cfg.CommissionFlatRate),
	}
	taskService := service.NewTaskService(repo, userStore, cfg.TaskServiceURL, cfg.TaskServiceToken)
	reportService := service.NewReportService(repo, rates, cfg.HighPerformerMinRate)
	authService := service.NewAuthService(repo, cfg.JWTSecret)

	// HANDLERS
	authHandler := handlers.NewAuthHandler(authService)
	syncHandler := handlers.NewSyncHandler(taskService, repo)
	reportsHandler := handlers.NewReportsHandler(reportService)
	usersHandler := handlers.NewUsersHandler(userStore)

	// ROUTER
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api := r.Group("/api/v1")

	// AUTH ROUTES
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// PROTECTED ROUTES
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))

	sync := protected.Group("/sync")
	{
		sync.POST("/tasks", syncHandler.SyncTasks)
		sync.GET("/history", syncHandler.GetSyncHistory)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/leaderboard", reportsHandler.GetLeaderboard)
		reports.GET("/commission", reportsHandler.GetCommission)
		reports.GET("/commission/export", reportsHandler.ExportCommission)
		reports.GET("/summary", reportsHandler.GetSummary)
	}

	users := protected.Group("/users")
	{
		users.GET("", usersHandler.ListUsers)
		users.GET("/:id", usersHandler.GetUser)
		users.GET("/:id/payroll", reportsHandler.GetUserPayroll)
	}

	// START SERVER
	log.Println("Server running on port:", cfg.Port)
	r.Run(":" + cfg.Port)
}
