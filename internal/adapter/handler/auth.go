package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/mockmate/mockmate-api/internal/adapter/dto/auth"
	"github.com/mockmate/mockmate-api/internal/infrastructure/http/middleware"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account and logs it in
// POST /v1/auth/register
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	// Optional profile fields are applied right after registration so the
	// register endpoint accepts the same shape the original clients send.
	if req.Skills != nil || req.ExperienceLevel != nil {
		user, err := h.authService.UpdateProfile(c.Request().Context(), result.User.Identity(), auth.ProfileUpdate{
			Skills:          req.Skills,
			ExperienceLevel: req.ExperienceLevel,
		})
		if err != nil {
			return handleError(c, h.logger, err)
		}
		result.User = user
	}

	return handleSuccess(c, h.logger, http.StatusCreated, authdto.NewAuthResponse(result))
}

// Login verifies credentials and issues tokens
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, authdto.NewAuthResponse(result))
}

// Refresh exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *Auth) Refresh(c echo.Context) error {
	var req authdto.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, authdto.NewAuthResponse(result))
}

// Me returns the authenticated user's profile
// GET /v1/users/me
func (h *Auth) Me(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	user, err := h.authService.GetMe(c.Request().Context(), ident)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, authdto.NewUserResponse(user))
}

// UpdateMe updates the authenticated user's profile
// PUT /v1/users/me
func (h *Auth) UpdateMe(c echo.Context) error {
	ident := middleware.GetIdentity(c)

	var req authdto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), ident, auth.ProfileUpdate{
		FullName:        req.FullName,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, authdto.NewUserResponse(user))
}
