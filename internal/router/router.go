package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"learntrack/internal/auth"
	"learntrack/internal/config"
	"learntrack/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	progressHandler *handler.ProgressHandler,
	achievementHandler *handler.AchievementHandler,
	testHandler *handler.TestHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	corsConfig := middleware.DefaultCORSConfig
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:5173"}
		corsConfig.AllowCredentials = true
	}
	e.Use(middleware.CORSWithConfig(corsConfig))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid session token)
	secured := api.Group("", auth.Middleware(jwtService))

	secured.GET("/auth/verify", authHandler.Verify)

	secured.GET("/progress", progressHandler.GetProgress)
	secured.POST("/progress/lesson", progressHandler.SaveLesson)

	secured.GET("/achievements", achievementHandler.GetAchievements)
	secured.POST("/achievements", achievementHandler.GrantAchievement)

	secured.POST("/tests/result", testHandler.SaveResult)
	secured.GET("/tests/results", testHandler.GetResults)

	secured.GET("/stats", statsHandler.GetStats)
	secured.GET("/dashboard", statsHandler.GetDashboard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
