package record

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sentinels for records whose date could not be recognized.
const (
	UnknownDateDisplay  = "不明"
	UnknownDateGroupKey = "日付不明"
)

// NormalizedDate is the canonical representation of a record date: a
// totally-ordered instant, a display string, and a calendar-day group key.
type NormalizedDate struct {
	Sortable time.Time
	Display  string
	GroupKey string
}

var (
	jpDatePattern      = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日(?:\s*(\d{1,2}):(\d{2}))?`)
	compactDatePattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(?:(\d{2})(\d{2})(\d{2})?)?$`)
	delimDatePattern   = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
)

// Layouts tried as a last resort before giving up on a date string.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// NormalizeDate parses a raw date field into its canonical triple. It
// recognizes, in priority order, the already-formatted Japanese date, the
// compact YYYYMMDD[HHMMSS] stamp, and delimited YYYY/MM/DD. Unrecognized
// input degrades to epoch zero (sorting last in descending order) with the
// raw string as display text; it never fails.
func NormalizeDate(raw string) NormalizedDate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NormalizedDate{Display: UnknownDateDisplay, GroupKey: UnknownDateGroupKey}
	}

	if m := jpDatePattern.FindStringSubmatch(raw); m != nil {
		t := buildDate(m[1], m[2], m[3], m[4], m[5], "")
		// Already in canonical form; keep the original display text.
		return NormalizedDate{Sortable: t, Display: raw, GroupKey: groupKey(t)}
	}

	if m := compactDatePattern.FindStringSubmatch(raw); m != nil {
		t := buildDate(m[1], m[2], m[3], m[4], m[5], m[6])
		return NormalizedDate{Sortable: t, Display: displayDate(t, m[4] != ""), GroupKey: groupKey(t)}
	}

	if m := delimDatePattern.FindStringSubmatch(raw); m != nil {
		t := buildDate(m[1], m[2], m[3], "", "", "")
		return NormalizedDate{Sortable: t, Display: displayDate(t, false), GroupKey: groupKey(t)}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			withTime := t.Hour() != 0 || t.Minute() != 0
			return NormalizedDate{Sortable: t, Display: displayDate(t, withTime), GroupKey: groupKey(t)}
		}
	}

	return NormalizedDate{Display: raw, GroupKey: UnknownDateGroupKey}
}

func buildDate(year, month, day, hour, minute, second string) time.Time {
	return time.Date(atoi(year), time.Month(atoi(month)), atoi(day),
		atoi(hour), atoi(minute), atoi(second), 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func displayDate(t time.Time, withTime bool) string {
	s := fmt.Sprintf("%04d年%02d月%02d日", t.Year(), int(t.Month()), t.Day())
	if withTime {
		s += fmt.Sprintf(" %02d:%02d", t.Hour(), t.Minute())
	}
	return s
}

func groupKey(t time.Time) string {
	if t.IsZero() {
		return UnknownDateGroupKey
	}
	return fmt.Sprintf("%04d/%02d/%02d", t.Year(), int(t.Month()), t.Day())
}
