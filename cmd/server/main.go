package main

import (
	"log"
	"net/http"

	_ "learntrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"learntrack/internal/auth"
	"learntrack/internal/config"
	"learntrack/internal/db"
	"learntrack/internal/handler"
	"learntrack/internal/model"
	"learntrack/internal/repository"
	"learntrack/internal/router"
	"learntrack/internal/service"
)

// @title Learning Progress Tracker API
// @version 1.0
// @description Learning progress tracker with lesson progress, achievements, test results and JWT authentication.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required: refusing to issue unverifiable tokens")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserStats{},
		&model.LessonProgress{},
		&model.Achievement{},
		&model.TestResult{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	achievementRepo := repository.NewAchievementRepository(gormDB)
	testResultRepo := repository.NewTestResultRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	progressService := service.NewProgressService(progressRepo)
	achievementService := service.NewAchievementService(achievementRepo)
	testService := service.NewTestService(testResultRepo)
	statsService := service.NewStatsService(statsRepo, progressRepo, testResultRepo, achievementRepo)

	// Initialize handlers
	dev := cfg.IsDevelopment()
	authHandler := handler.NewAuthHandler(authService, dev)
	progressHandler := handler.NewProgressHandler(progressService, dev)
	achievementHandler := handler.NewAchievementHandler(achievementService, dev)
	testHandler := handler.NewTestHandler(testService, dev)
	statsHandler := handler.NewStatsHandler(statsService, dev)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		progressHandler,
		achievementHandler,
		testHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("API available at: http://localhost:%s/api", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
