package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"learntrack/internal/auth"
	"learntrack/internal/model"
	"learntrack/internal/response"
	"learntrack/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	development bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, development bool) *AuthHandler {
	return &AuthHandler{authService: authService, development: development}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request. Username accepts either
// the username or the email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func publicUser(u *model.User) echo.Map {
	return echo.Map{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return response.Fail(c, http.StatusBadRequest, err.Error())
		}
		return response.ServerError(c, "server error during registration", err, h.development)
	}

	return response.OK(c, http.StatusCreated, echo.Map{
		"message": "registration successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

// Login godoc
// @Summary Login with username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.Fail(c, http.StatusUnauthorized, err.Error())
		}
		return response.ServerError(c, "server error during login", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

// Verify godoc
// @Summary Resolve the authenticated user from a token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return response.Fail(c, http.StatusUnauthorized, "invalid token")
	}

	user, err := h.authService.VerifyUser(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return response.Fail(c, http.StatusNotFound, err.Error())
		}
		return response.ServerError(c, "server error", err, h.development)
	}

	return response.OK(c, http.StatusOK, echo.Map{
		"user": echo.Map{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}
