package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"linebot-admin/internal/middleware"
	"linebot-admin/internal/models"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) install(c echo.Context) error {
	var req credentials
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.Auth.CreateFirstAdmin(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrAlreadyInstalled) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) login(c echo.Context) error {
	var req credentials
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.Auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return httpError(err, "")
	}

	token, expiresAt, err := h.Tokens.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return httpError(err, "")
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  expiresAt,
		HttpOnly: true,
		Path:     "/",
	})
	return c.JSON(http.StatusOK, echo.Map{"token": token, "expiresAt": expiresAt})
}

func (h *Handler) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:    middleware.AuthCookieName,
		Value:   "",
		Expires: time.Now().Add(-1 * time.Hour),
		Path:    "/",
	})
	return c.NoContent(http.StatusNoContent)
}
