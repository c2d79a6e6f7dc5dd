package appointment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/rs/zerolog"

	"github.com/karte/karte/internal/platform/upstream"
)

// ErrBadDate is returned for a date parameter that is not YYYY-MM-DD.
var ErrBadDate = errors.New("日付はYYYY-MM-DD形式で指定してください")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Source fetches the raw booking rows for one date.
type Source interface {
	FetchDay(ctx context.Context, date string) ([]Raw, error)
}

type httpSource struct {
	client *upstream.Client
}

func NewHTTPSource(client *upstream.Client) Source {
	return &httpSource{client: client}
}

func (s *httpSource) FetchDay(ctx context.Context, date string) ([]Raw, error) {
	var out struct {
		Appointments []Raw `json:"appointments"`
	}
	if err := s.client.GetJSON(ctx, "/api/appointments/"+date, nil, &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

type Service struct {
	source Source
	logger zerolog.Logger
}

func NewService(source Source, logger zerolog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// GetDay returns the formatted appointment list for a date, sorted by
// time then display order.
func (s *Service) GetDay(ctx context.Context, date string) (*DayList, error) {
	if !datePattern.MatchString(date) {
		return nil, fmt.Errorf("%w: %q", ErrBadDate, date)
	}

	rows, err := s.source.FetchDay(ctx, date)
	if err != nil {
		return nil, err
	}

	// Times that carry an examination booking, for the Kbn 3 rule.
	examTimes := make(map[string]bool)
	for _, r := range rows {
		if r.Kbn == 1 {
			examTimes[r.Time] = true
		}
	}

	list := make([]Appointment, 0, len(rows))
	for _, r := range rows {
		patient := r.Patient
		if patient.Name == "" {
			patient.Name = unknown
		}
		if patient.Gender == "" {
			patient.Gender = unknown
		}
		patient.BirthDate = FormatBirthDate(patient.BirthDate)

		list = append(list, Appointment{
			ID:              r.ID,
			PatientCd:       r.PatientCd,
			PatientInfo:     patient,
			AppointmentDate: r.Date,
			AppointmentTime: FormatTime(r.Time),
			EndTime:         FormatTime(r.EndTime),
			DisplayContent:  DisplayContent(r, examTimes[r.Time]),
			Comment:         r.Comment,
			CommentDetail:   r.CommentDetail,
			DisplayOrder:    r.DisplayOrder,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].AppointmentTime != list[j].AppointmentTime {
			return list[i].AppointmentTime < list[j].AppointmentTime
		}
		return list[i].DisplayOrder < list[j].DisplayOrder
	})

	s.logger.Debug().Str("date", date).Int("total", len(list)).Msg("appointment list built")

	return &DayList{Appointments: list, Date: date, Total: len(list)}, nil
}
