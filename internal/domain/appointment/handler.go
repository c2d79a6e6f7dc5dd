package appointment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments/:date", h.GetDay)
}

// GetDay returns the formatted appointment list for :date (YYYY-MM-DD).
func (h *Handler) GetDay(c echo.Context) error {
	list, err := h.svc.GetDay(c.Request().Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, ErrBadDate) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, "予約一覧の取得に失敗しました: "+err.Error())
	}
	return c.JSON(http.StatusOK, list)
}
