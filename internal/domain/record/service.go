package record

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNotFound wraps the backend's in-body "patient/records not found"
// answers. Transport failures are returned as-is.
var ErrNotFound = errors.New("not found")

// ErrSuperseded is returned when a fetch finished after a newer fetch for
// the same patient had already been started and no newer result is
// available yet.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// Service fetches a patient's raw record bundle and runs the parsing
// pipeline over it. Each fetch rebuilds the collection wholesale; the new
// chart replaces the previous one atomically (last-request-wins when
// fetches for the same patient overlap).
type Service struct {
	source RecordSource
	logger zerolog.Logger

	mu     sync.Mutex
	gen    map[string]uint64
	latest map[string]*PatientChart
}

func NewService(source RecordSource, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		gen:    make(map[string]uint64),
		latest: make(map[string]*PatientChart),
	}
}

// GetPatientChart fetches and parses the full record collection for a
// patient. Parsing never fails; only the upstream fetch can return an
// error.
func (s *Service) GetPatientChart(ctx context.Context, patientID string) (*PatientChart, error) {
	patientID = NormalizePatientID(patientID)

	s.mu.Lock()
	s.gen[patientID]++
	g := s.gen[patientID]
	s.mu.Unlock()

	bundle, err := s.source.FetchPatientRecords(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bundle.Error != "" && bundle.Records == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, bundle.Error)
	}

	chart := &PatientChart{
		PatientID:   patientID,
		PatientName: bundle.PatientName,
		BirthDate:   bundle.BirthDate,
		Gender:      bundle.Gender,
		Records:     Parse(bundle.Records),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[patientID] != g {
		// A newer fetch was started while this one was in flight; its
		// result wins.
		if newer, ok := s.latest[patientID]; ok {
			return newer, nil
		}
		return nil, ErrSuperseded
	}
	s.latest[patientID] = chart

	s.logger.Debug().
		Str("patient_id", patientID).
		Int("records", len(chart.Records)).
		Msg("patient chart rebuilt")

	return chart, nil
}

// FormatRecordsText fetches the chart and renders the records with the
// given ids back into ラベル：値 text for the summarization prompt.
func (s *Service) FormatRecordsText(ctx context.Context, patientID string, ids []int) (string, error) {
	chart, err := s.GetPatientChart(ctx, patientID)
	if err != nil {
		return "", err
	}
	return FormatForSummary(FilterByIDs(chart.Records, ids)), nil
}
