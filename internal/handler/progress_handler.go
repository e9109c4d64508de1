package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learntrack/internal/auth"
	"learntrack/internal/response"
	"learntrack/internal/service"
)

// ProgressHandler handles lesson progress endpoints.
type ProgressHandler struct {
	progressService service.ProgressService
	development     bool
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(progressService service.ProgressService, development bool) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, development: development}
}

// SaveLessonRequest represents a lesson progress save.
type SaveLessonRequest struct {
	LessonID    string `json:"lessonId" validate:"required"`
	Completed   bool   `json:"completed"`
	CurrentStep int    `json:"currentStep" validate:"min=0"`
}

// GetProgress godoc
// @Summary List the user's lesson progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	progress, err := h.progressService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{"progress": progress})
}

// SaveLesson godoc
// @Summary Save progress for a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveLessonRequest true "Lesson progress"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /progress/lesson [post]
func (h *ProgressHandler) SaveLesson(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	var req SaveLessonRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	progress, err := h.progressService.Save(c.Request().Context(), claims.UserID, req.LessonID, req.Completed, req.CurrentStep)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{
		"message":  "progress saved",
		"progress": progress,
	})
}
