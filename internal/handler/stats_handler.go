package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learntrack/internal/auth"
	"learntrack/internal/response"
	"learntrack/internal/service"
)

// StatsHandler handles statistics and dashboard endpoints.
type StatsHandler struct {
	statsService service.StatsService
	development  bool
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService, development bool) *StatsHandler {
	return &StatsHandler{statsService: statsService, development: development}
}

// GetStats godoc
// @Summary Get the user's aggregate statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	stats, err := h.statsService.GetStats(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{"stats": stats})
}

// GetDashboard godoc
// @Summary Get stats plus recent lessons, tests and achievements
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /dashboard [get]
func (h *StatsHandler) GetDashboard(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	dashboard, err := h.statsService.GetDashboard(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{"dashboard": dashboard})
}
