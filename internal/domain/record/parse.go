package record

// Parse runs the full pipeline over a raw multi-record blob: segmentation,
// rich-text decoding, classification, and date normalization. The result is
// sorted date-descending. Parse is total: malformed input degrades to
// best-effort records, never an error.
func Parse(blob string) []ParsedRecord {
	maps := Segment(blob)
	records := make([]ParsedRecord, 0, len(maps))

	for i, fields := range maps {
		c := Classify(fields)
		rawDate := fields.Get(labelDate)
		d := NormalizeDate(rawDate)

		records = append(records, ParsedRecord{
			RecordID:    i,
			RawDate:     rawDate,
			Sortable:    d.Sortable,
			DisplayDate: d.Display,
			GroupKey:    d.GroupKey,
			Type:        c.Type,
			SOAP:        c.SOAP,
			FreeText:    c.FreeText,
			Sections:    c.Sections,
			Meta:        c.Meta,
		})
	}

	return SortDescendingByDate(records)
}
