package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"linebot-admin/internal/models"
	"linebot-admin/internal/services"
)

const lineBotNotFound = "line bot config not found"

type messageRequest struct {
	Message string `json:"message"`
}

type broadcastResponse struct {
	Status     string                   `json:"status"`
	Results    []models.BroadcastResult `json:"results"`
	Total      int                      `json:"total"`
	Successful int                      `json:"successful"`
}

func parseConfigID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, lineBotNotFound)
	}
	return id, nil
}

func (h *Handler) listLineBotConfigs(c echo.Context) error {
	configs, err := h.LineBots.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	if configs == nil {
		configs = []models.LineBotConfig{}
	}
	return c.JSON(http.StatusOK, configs)
}

func (h *Handler) getLineBotConfig(c echo.Context) error {
	id, err := parseConfigID(c)
	if err != nil {
		return err
	}
	cfg, err := h.LineBots.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) createLineBotConfig(c echo.Context) error {
	var in models.LineBotConfigInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}
	cfg, err := h.LineBots.Create(c.Request().Context(), in)
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	return c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) updateLineBotConfig(c echo.Context) error {
	id, err := parseConfigID(c)
	if err != nil {
		return err
	}
	var patch models.LineBotConfigPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}
	cfg, err := h.LineBots.Update(c.Request().Context(), id, patch)
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) deleteLineBotConfig(c echo.Context) error {
	id, err := parseConfigID(c)
	if err != nil {
		return err
	}
	if err := h.LineBots.Delete(c.Request().Context(), id); err != nil {
		return httpError(err, lineBotNotFound)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "line bot config deleted"})
}

func (h *Handler) testLineBotConfig(c echo.Context) error {
	id, err := parseConfigID(c)
	if err != nil {
		return err
	}
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.LineBots.TestConfig(c.Request().Context(), id, req.Message)
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	if !res.Success {
		return echo.NewHTTPError(http.StatusBadRequest, res.Message)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) broadcast(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	results, err := h.LineBots.Broadcast(c.Request().Context(), req.Message)
	if err != nil {
		return httpError(err, lineBotNotFound)
	}
	if results == nil {
		results = []models.BroadcastResult{}
	}
	return c.JSON(http.StatusOK, broadcastResponse{
		Status:     "completed",
		Results:    results,
		Total:      len(results),
		Successful: services.CountSuccessful(results),
	})
}
