package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func getDay(t *testing.T, h *Handler, date string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues(date)
	return rec, h.GetDay(c)
}

func TestHandler_GetDay(t *testing.T) {
	h := NewHandler(newTestService([]Raw{
		{ID: 1, Kbn: 1, Time: "09:00:00", Patient: PatientInfo{Name: "田中", Gender: "男", BirthDate: "19700102"}},
	}))

	rec, err := getDay(t, h, "2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp DayList
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Total != 1 || resp.Appointments[0].DisplayContent != "診：診察" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHandler_GetDay_BadDate(t *testing.T) {
	h := NewHandler(newTestService(nil))
	_, err := getDay(t, h, "03-05-2024")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
