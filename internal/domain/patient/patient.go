// Package patient proxies patient search to the clinic records backend.
package patient

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/karte/karte/internal/platform/upstream"
)

// DefaultQuery replaces searches too short to be useful.
const DefaultQuery = "患者"

// Summary is one search hit as the backend returns it.
type Summary struct {
	PatientID string `json:"patientId"`
	Name      string `json:"name"`
	Kana      string `json:"kana"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
}

// SearchResult is the handler response.
type SearchResult struct {
	Patients []Summary `json:"patients"`
	Query    string    `json:"query"`
	Total    int       `json:"total"`
}

type Service struct {
	client *upstream.Client
	logger zerolog.Logger
}

func NewService(client *upstream.Client, logger zerolog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Search queries the backend. Queries shorter than two runes fall back
// to DefaultQuery.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	if utf8.RuneCountInString(query) < 2 {
		query = DefaultQuery
	}

	var out struct {
		Patients []Summary `json:"patients"`
	}
	if err := s.client.GetJSON(ctx, "/api/search-patients", map[string]string{"query": query}, &out); err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("patient search failed")
		return nil, err
	}

	return &SearchResult{Patients: out.Patients, Query: query, Total: len(out.Patients)}, nil
}
