package nextrecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/karte/karte/internal/platform/annotation"
	"github.com/karte/karte/internal/platform/upstream"
)

// MaxGuestBatch caps how many guests one guest-list request resolves.
const MaxGuestBatch = 5

var (
	ErrNoGuestIDs   = errors.New("ゲストIDリストが必要です")
	ErrMissingInput = errors.New("ゲストIDと記録データが必要です")
	ErrGuestMissing = errors.New("ゲストが見つかりません")
)

// Source resolves guests against the clinic records backend.
type Source interface {
	FetchGuestList(ctx context.Context, guestIDs []string) ([]Guest, error)
	FetchGuestRecord(ctx context.Context, guestID string) (*GuestRecord, error)
}

type httpSource struct {
	client *upstream.Client
}

func NewHTTPSource(client *upstream.Client) Source {
	return &httpSource{client: client}
}

func (s *httpSource) FetchGuestList(ctx context.Context, guestIDs []string) ([]Guest, error) {
	var out struct {
		Guests []Guest `json:"guests"`
	}
	body := map[string][]string{"guestIds": guestIDs}
	if err := s.client.PostJSON(ctx, "/api/next-record/guest-list", body, &out); err != nil {
		return nil, err
	}
	return out.Guests, nil
}

func (s *httpSource) FetchGuestRecord(ctx context.Context, guestID string) (*GuestRecord, error) {
	var out GuestRecord
	if err := s.client.GetJSON(ctx, "/api/next-record/guest-record/"+guestID, nil, &out); err != nil {
		return nil, err
	}
	if out.GuestInfo.GuestID == "" {
		return nil, fmt.Errorf("%w: %s", ErrGuestMissing, guestID)
	}
	return &out, nil
}

type Service struct {
	source Source
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(source Source, logger zerolog.Logger) *Service {
	return &Service{source: source, logger: logger, now: time.Now}
}

// GuestList resolves up to MaxGuestBatch guests from the given ids.
func (s *Service) GuestList(ctx context.Context, guestIDs []string) ([]Guest, error) {
	if len(guestIDs) == 0 {
		return nil, ErrNoGuestIDs
	}
	if len(guestIDs) > MaxGuestBatch {
		guestIDs = guestIDs[:MaxGuestBatch]
	}

	guests, err := s.source.FetchGuestList(ctx, guestIDs)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Int("requested", len(guestIDs)).Int("resolved", len(guests)).Msg("guest list resolved")
	return guests, nil
}

// GuestRecord returns the guest and their last SOAP record.
func (s *Service) GuestRecord(ctx context.Context, guestID string) (*GuestRecord, error) {
	if guestID == "" {
		return nil, ErrGuestMissing
	}
	return s.source.FetchGuestRecord(ctx, guestID)
}

// Create validates the drafted record and converts every SOAP section to
// the rich-run format. The result is what the charting system would
// store; nothing is persisted here.
func (s *Service) Create(ctx context.Context, guestID string, record *SOAPRecord) (*CreateResult, error) {
	if guestID == "" || record == nil {
		return nil, ErrMissingInput
	}
	if record.Subject == "" && record.Object == "" && record.Assessment == "" && record.Plan == "" {
		return nil, ErrMissingInput
	}

	encoded := EncodedRecord{Date: record.Date}
	sections := []struct {
		text string
		out  *string
	}{
		{record.Subject, &encoded.Subject},
		{record.Object, &encoded.Object},
		{record.Assessment, &encoded.Assessment},
		{record.Plan, &encoded.Plan},
	}
	for _, sec := range sections {
		if sec.text == "" {
			continue
		}
		runs, err := annotation.EncodeJSON(sec.text)
		if err != nil {
			return nil, err
		}
		*sec.out = runs
	}

	s.logger.Info().Str("guest_id", guestID).Msg("next-visit record prepared")

	return &CreateResult{
		Success: true,
		Message: "カルテが正常に作成されました",
		JSONOutput: CreateOutput{
			GuestID: guestID,
			Record:  encoded,
			Created: s.now().Format("2006-01-02 15:04:05"),
		},
	}, nil
}
