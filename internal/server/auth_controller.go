package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/server/middleware"
	"github.com/littleforest/storefront/internal/usecase"
)

type AuthController interface {
	Login(c echo.Context) error
	Me(c echo.Context) error
	Logout(c echo.Context) error
}

type authController struct {
	authUsecase *usecase.AuthUseCase
}

func NewAuthController(authUsecase *usecase.AuthUseCase) AuthController {
	return &authController{
		authUsecase: authUsecase,
	}
}

// Login deliberately answers bad email, unknown account and wrong password
// with the same 401.
func (ac *authController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	userAgent := c.Request().Header.Get("User-Agent")
	ipAddress := c.RealIP()

	response, err := ac.authUsecase.Login(ctx, req, userAgent, ipAddress)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, response)
}

func (ac *authController) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (ac *authController) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ac.authUsecase.RevokeToken(ctx, middleware.CurrentToken(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "logged out successfully",
	})
}
