package summary

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karte/karte/internal/domain/record"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:id/summary", h.GenerateSummary)
}

type summaryRequest struct {
	RecordIDs []int `json:"recordIds"`
}

type summaryResponse struct {
	GeneratedText string `json:"generatedText"`
}

// GenerateSummary produces a physician summary for the selected records.
func (h *Handler) GenerateSummary(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	text, err := h.svc.Summarize(c.Request().Context(), c.Param("id"), req.RecordIDs)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, summaryResponse{GeneratedText: text})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrEmptySelection):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoAPIKey):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errors.Is(err, record.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "AIによる生成に失敗しました: "+err.Error())
	}
}
