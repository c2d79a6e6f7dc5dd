package record

import (
	"context"
	"strings"

	"github.com/karte/karte/internal/platform/upstream"
)

type httpSource struct {
	client *upstream.Client
}

// NewHTTPSource returns a RecordSource backed by the clinic records
// backend.
func NewHTTPSource(client *upstream.Client) RecordSource {
	return &httpSource{client: client}
}

func (s *httpSource) FetchPatientRecords(ctx context.Context, patientID string) (*Bundle, error) {
	var b Bundle
	if err := s.client.GetJSON(ctx, "/api/patient-records/"+NormalizePatientID(patientID), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// NormalizePatientID zero-pads purely numeric patient ids to the 8-digit
// form the backend keys on.
func NormalizePatientID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return id
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}
	for len(id) < 8 {
		id = "0" + id
	}
	return id
}
