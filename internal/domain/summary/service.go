package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/karte/karte/internal/domain/record"
)

// ErrEmptySelection is returned when no record ids were given.
var ErrEmptySelection = errors.New("記録が選択されていません")

// Service builds the prompt from the patient's selected records and
// hands it to the LLM client.
type Service struct {
	records *record.Service
	client  Client
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(records *record.Service, client Client, logger zerolog.Logger) *Service {
	return &Service{records: records, client: client, logger: logger, now: time.Now}
}

// Summarize fetches the chart, formats the selected records, and
// generates the physician summary.
func (s *Service) Summarize(ctx context.Context, patientID string, recordIDs []int) (string, error) {
	if len(recordIDs) == 0 {
		return "", ErrEmptySelection
	}

	text, err := s.records.FormatRecordsText(ctx, patientID, recordIDs)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptySelection
	}

	prompt := BuildPrompt(record.NormalizePatientID(patientID), text, s.now())
	generated, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("サマリー生成に失敗しました: %w", err)
	}

	s.logger.Info().Str("patient_id", patientID).Int("records", len(recordIDs)).Msg("summary generated")
	return generated, nil
}
