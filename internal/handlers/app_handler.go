package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linebot-admin/internal/models"
)

const appNotFound = "app not found"

func (h *Handler) listApps(c echo.Context) error {
	apps, err := h.Apps.List()
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) updateApp(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, appNotFound)
	}
	var patch models.PortalAppPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	app, err := h.Apps.Update(id, patch)
	if err != nil {
		return httpError(err, appNotFound)
	}
	return c.JSON(http.StatusOK, app)
}
