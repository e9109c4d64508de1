package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learntrack/internal/auth"
	"learntrack/internal/model"
	"learntrack/internal/response"
	"learntrack/internal/service"
)

// TestHandler handles test result endpoints.
type TestHandler struct {
	testService service.TestService
	development bool
}

// NewTestHandler creates a new test handler.
func NewTestHandler(testService service.TestService, development bool) *TestHandler {
	return &TestHandler{testService: testService, development: development}
}

// SaveResultRequest represents one test attempt.
type SaveResultRequest struct {
	TestID         string  `json:"testId" validate:"required"`
	Score          int     `json:"score" validate:"min=0"`
	TotalQuestions int     `json:"totalQuestions" validate:"required,min=1"`
	Percentage     float64 `json:"percentage" validate:"min=0,max=100"`
	Passed         bool    `json:"passed"`
}

// SaveResult godoc
// @Summary Record a test attempt
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveResultRequest true "Test result"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /tests/result [post]
func (h *TestHandler) SaveResult(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	var req SaveResultRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.testService.SaveResult(c.Request().Context(), &model.TestResult{
		UserID:         claims.UserID,
		TestID:         req.TestID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     req.Percentage,
		Passed:         req.Passed,
	})
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{
		"message":    "test result saved",
		"testResult": result,
	})
}

// GetResults godoc
// @Summary List the user's test results, newest first
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /tests/results [get]
func (h *TestHandler) GetResults(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	results, err := h.testService.ListResults(c.Request().Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{"results": results})
}
