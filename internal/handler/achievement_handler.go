package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learntrack/internal/auth"
	"learntrack/internal/response"
	"learntrack/internal/service"
)

// AchievementHandler handles achievement endpoints.
type AchievementHandler struct {
	achievementService service.AchievementService
	development        bool
}

// NewAchievementHandler creates a new achievement handler.
func NewAchievementHandler(achievementService service.AchievementService, development bool) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, development: development}
}

// GrantAchievementRequest represents an achievement grant.
type GrantAchievementRequest struct {
	AchievementName string `json:"achievementName" validate:"required"`
	AchievementIcon string `json:"achievementIcon"`
}

// GetAchievements godoc
// @Summary List the user's achievements, newest first
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /achievements [get]
func (h *AchievementHandler) GetAchievements(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	achievements, err := h.achievementService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{"achievements": achievements})
}

// GrantAchievement godoc
// @Summary Grant an achievement to the user
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GrantAchievementRequest true "Achievement data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /achievements [post]
func (h *AchievementHandler) GrantAchievement(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	var req GrantAchievementRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	achievement, alreadyEarned, err := h.achievementService.Grant(c.Request().Context(), claims.UserID, req.AchievementName, req.AchievementIcon)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	if alreadyEarned {
		return response.OK(c, http.StatusOK, echo.Map{
			"message":       "achievement already earned",
			"alreadyEarned": true,
		})
	}

	return response.OK(c, http.StatusOK, echo.Map{
		"message":     "achievement earned",
		"achievement": achievement,
	})
}
