package handlers

import (
	"github.com/labstack/echo/v4"

	"linebot-admin/internal/middleware"
	"linebot-admin/internal/utils"
)

// NewServer builds the echo instance with the shared middleware chain, the
// JWT guard and every route.
func NewServer(h *Handler, validator *utils.Validator, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator

	middleware.Setup(e, corsOrigins)
	e.Use(middleware.RequireAuth(h.Tokens))
	h.Register(e)
	return e
}
