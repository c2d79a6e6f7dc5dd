package appointment

import "fmt"

const unknown = "不明"

// DisplayContent decides the booking label. Kbn 3 bookings show their
// slot name only when a Kbn 1 (examination) booking exists at the same
// time; otherwise they render as a plain examination.
func DisplayContent(r Raw, sameSlotHasExam bool) string {
	switch r.Kbn {
	case 1:
		return "診：診察"
	case 2:
		return "診：" + orDefault(r.Slot, "予約")
	case 3:
		if sameSlotHasExam {
			return "診：" + orDefault(r.Slot, "予約")
		}
		return "診：診察"
	default:
		return "診：予約"
	}
}

// FormatTime normalizes a backend time value to HH:MM. Values shorter
// than five characters pass through unchanged.
func FormatTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// FormatBirthDate renders a compact YYYYMMDD birth date as
// YYYY年MM月DD日, or 不明 when empty. Unrecognized values pass through.
func FormatBirthDate(d string) string {
	if d == "" {
		return unknown
	}
	if len(d) == 8 && allDigits(d) {
		return fmt.Sprintf("%s年%s月%s日", d[:4], d[4:6], d[6:8])
	}
	return d
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
