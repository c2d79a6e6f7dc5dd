package record

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/karte/karte/internal/platform/upstream"
)

func TestNormalizePatientID(t *testing.T) {
	cases := []struct{ in, want string }{
		{"123", "00000123"},
		{"00000123", "00000123"},
		{"123456789", "123456789"},
		{"A-42", "A-42"},
		{"", ""},
		{"  7 ", "00000007"},
	}
	for _, tc := range cases {
		if got := NormalizePatientID(tc.in); got != tc.want {
			t.Errorf("NormalizePatientID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHTTPSource_FetchPatientRecords(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/patient-records/00000042" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":"日付：20240101\n診療科：内科","patientName":"田中","birthDate":"1970年01月01日","gender":"男"}`))
	}))
	defer backend.Close()

	src := NewHTTPSource(upstream.New(backend.URL, 2*time.Second, zerolog.Nop()))
	b, err := src.FetchPatientRecords(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PatientName != "田中" {
		t.Errorf("PatientName = %q", b.PatientName)
	}
	if b.Records == "" {
		t.Error("empty records blob")
	}
}

func TestHTTPSource_BackendDown(t *testing.T) {
	src := NewHTTPSource(upstream.New("http://127.0.0.1:1", 200*time.Millisecond, zerolog.Nop()))
	if _, err := src.FetchPatientRecords(context.Background(), "1"); err == nil {
		t.Error("expected transport error")
	}
}
