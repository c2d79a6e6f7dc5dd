package record

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/records", h.GetPatientRecords)
	api.GET("/patients/:id/records/text", h.GetRecordsText)
}

type chartResponse struct {
	Patient    patientInfo    `json:"patient"`
	Records    []ParsedRecord `json:"records"`
	Groups     []DayGroup     `json:"groups"`
	Categories []string       `json:"categories"`
	Total      int            `json:"total"`
}

type patientInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

// GetPatientRecords returns the parsed chart, optionally filtered to one
// category tab via ?category=. Categories and day groups are always derived
// from the filtered view; the category list itself comes from the full
// collection so tabs do not disappear while filtered.
func (h *Handler) GetPatientRecords(c echo.Context) error {
	id := c.Param("id")
	if strings.TrimSpace(id) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient id is required")
	}

	chart, err := h.svc.GetPatientChart(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	visible := FilterByCategory(chart.Records, c.QueryParam("category"))

	return c.JSON(http.StatusOK, chartResponse{
		Patient: patientInfo{
			ID:        chart.PatientID,
			Name:      chart.PatientName,
			BirthDate: chart.BirthDate,
			Gender:    chart.Gender,
		},
		Records:    visible,
		Groups:     GroupByDay(visible),
		Categories: append([]string{CategoryAll}, AvailableCategories(chart.Records)...),
		Total:      len(chart.Records),
	})
}

// GetRecordsText renders the records named by ?ids=0,2,5 in the summary
// input format, for prompt preview.
func (h *Handler) GetRecordsText(c echo.Context) error {
	id := c.Param("id")
	ids, err := parseIDList(c.QueryParam("ids"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ids parameter")
	}
	if len(ids) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "ids parameter is required")
	}

	text, err := h.svc.FormatRecordsText(c.Request().Context(), id, ids)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}

func parseIDList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, n)
	}
	return ids, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSuperseded):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "診療記録の取得に失敗しました: "+err.Error())
	}
}
