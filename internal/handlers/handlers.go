package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"linebot-admin/internal/models"
	"linebot-admin/internal/services"
	"linebot-admin/internal/utils"
)

// Handler bundles the services exposed over HTTP.
type Handler struct {
	LineBots *services.LineBotService
	Apps     *services.PortalAppService
	Auth     *services.AuthService
	Tokens   *utils.TokenIssuer
	Ping     func() error
}

// Register mounts every route. Authentication middleware is installed by the
// caller on the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.health)

	api := e.Group("/api")

	api.POST("/install", h.install)
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)

	api.GET("/linebot-configs", h.listLineBotConfigs)
	api.POST("/linebot-configs", h.createLineBotConfig)
	api.POST("/linebot-configs/broadcast", h.broadcast)
	api.GET("/linebot-configs/:id", h.getLineBotConfig)
	api.PUT("/linebot-configs/:id", h.updateLineBotConfig)
	api.DELETE("/linebot-configs/:id", h.deleteLineBotConfig)
	api.POST("/linebot-configs/:id/test", h.testLineBotConfig)

	api.GET("/apps", h.listApps)
	api.PUT("/apps/:id", h.updateApp)
}

func (h *Handler) health(c echo.Context) error {
	if h.Ping != nil {
		if err := h.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unhealthy", "error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
}

// bindAndValidate decodes the JSON body into v and runs the struct validator.
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service errors to HTTP errors. notFoundMsg is the fixed
// message returned for models.ErrNotFound.
func httpError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, models.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("request failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
