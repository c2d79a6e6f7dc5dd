package patient

import (
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
	api.GET("/patients/search", h.Search)
}

// Search forwards ?q= to the backend search.
func (h *Handler) Search(c echo.Context) error {
	result, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			"検索サーバーへの接続に失敗しました: "+err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
