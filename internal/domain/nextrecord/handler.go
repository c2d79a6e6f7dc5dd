package nextrecord

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
	api.POST("/next-record/guest-list", h.GuestList)
	api.GET("/next-record/guest-record/:id", h.GuestRecord)
	api.POST("/next-record/create", h.Create)
}

type guestListRequest struct {
	GuestIDs []string `json:"guestIds"`
}

// GuestList resolves the posted guest ids (first five only).
func (h *Handler) GuestList(c echo.Context) error {
	var req guestListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	guests, err := h.svc.GuestList(c.Request().Context(), req.GuestIDs)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"guests": guests})
}

// GuestRecord returns a guest plus their last SOAP record.
func (h *Handler) GuestRecord(c echo.Context) error {
	rec, err := h.svc.GuestRecord(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

type createRequest struct {
	GuestID string      `json:"guestId"`
	Record  *SOAPRecord `json:"record"`
}

// Create converts the drafted record into the stored rich-run format.
func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.Create(c.Request().Context(), req.GuestID, req.Record)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNoGuestIDs), errors.Is(err, ErrMissingInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrGuestMissing):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "カルテ作成に失敗しました: "+err.Error())
	}
}
