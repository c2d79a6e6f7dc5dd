package record

import "strings"

// Labels treated as primary clinical sections when reconstructing record
// text for the summarization prompt.
var mainSectionLabels = map[string]bool{
	"主訴": true, "現病歴": true, "診察所見": true, "診断": true, "処置・指導・処方": true,
}

// IsMainSection reports whether a label is a SOAP quadrant or one of the
// primary clinical sections.
func IsMainSection(label string) bool {
	return soapLabels[label] || mainSectionLabels[label]
}

// FormatForSummary renders the given records back into the ラベル：値 text
// convention, one block per record separated by the record separator. This
// is the inverse of the input format and feeds the summarization prompt.
func FormatForSummary(records []ParsedRecord) string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, formatRecord(r))
	}
	return strings.Join(blocks, RecordSeparator)
}

// FilterByIDs returns the records whose ids appear in ids, preserving the
// collection order. Unknown ids are ignored.
func FilterByIDs(records []ParsedRecord, ids []int) []ParsedRecord {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []ParsedRecord
	for _, r := range records {
		if want[r.RecordID] {
			out = append(out, r)
		}
	}
	return out
}

// Selected returns the records marked selected, in collection order.
func Selected(records []ParsedRecord, selection SelectionState) []ParsedRecord {
	var out []ParsedRecord
	for _, r := range records {
		if selection[r.RecordID] {
			out = append(out, r)
		}
	}
	return out
}

func formatRecord(r ParsedRecord) string {
	var b strings.Builder

	date := r.RawDate
	if strings.TrimSpace(date) == "" {
		date = UnknownDateGroupKey
	}
	b.WriteString(labelDate + "：" + date + "\n")
	b.WriteString(labelDepartment + "：" + r.Meta.Department + "\n")
	b.WriteString(labelPhysician + "：" + r.Meta.Physician + "\n")

	soap := map[string]string{
		"Subject":    r.SOAP.Subject,
		"Object":     r.SOAP.Object,
		"Assessment": r.SOAP.Assessment,
		"Plan":       r.SOAP.Plan,
	}
	for _, label := range soapOrder {
		if soap[label] != "" {
			b.WriteString(label + "：" + soap[label] + "\n")
		}
	}

	for _, s := range r.Sections {
		if !IsMainSection(s.Label) {
			continue
		}
		b.WriteString(s.Label + "：" + s.Text + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
