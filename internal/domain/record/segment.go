package record

import (
	"regexp"
	"strings"
)

// RecordSeparator delimits individual records inside the upstream blob.
// The same separator is used in the other direction when formatting
// selected records for summarization.
const RecordSeparator = "\n\n---\n\n"

// fieldLine matches a ラベル：値 line (full-width colon).
var fieldLine = regexp.MustCompile(`^([^：]+)：(.*)$`)

// FieldMap is a label → raw value mapping in first-seen order. Values are
// kept raw; rich-text decoding happens later, in classification.
type FieldMap struct {
	labels []string
	values map[string]string
}

func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]string)}
}

// Set stores a field value. A repeated label keeps its original position
// and takes the new value.
func (f *FieldMap) Set(label, value string) {
	if _, ok := f.values[label]; !ok {
		f.labels = append(f.labels, label)
	}
	f.values[label] = value
}

func (f *FieldMap) Get(label string) string {
	return f.values[label]
}

func (f *FieldMap) Has(label string) bool {
	_, ok := f.values[label]
	return ok
}

// Labels returns the field labels in first-seen order.
func (f *FieldMap) Labels() []string {
	return f.labels
}

func (f *FieldMap) Len() int {
	return len(f.labels)
}

// Segment splits the raw multi-record blob into per-record field maps.
// A blob without the separator is treated as a single record, not an
// error. Lines before the first label line of a block are discarded.
func Segment(blob string) []*FieldMap {
	blocks := strings.Split(blob, RecordSeparator)
	maps := make([]*FieldMap, 0, len(blocks))

	for _, block := range blocks {
		fields := segmentBlock(block)
		if fields.Len() == 0 {
			continue
		}
		maps = append(maps, fields)
	}
	return maps
}

func segmentBlock(block string) *FieldMap {
	fields := NewFieldMap()

	var label string
	var content strings.Builder

	flush := func() {
		if label != "" {
			fields.Set(label, strings.TrimSpace(content.String()))
		}
		content.Reset()
	}

	for _, line := range strings.Split(block, "\n") {
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			flush()
			label = strings.TrimSpace(m[1])
			content.WriteString(strings.TrimSpace(m[2]))
			continue
		}
		if label == "" {
			// No field open yet; cannot occur in well-formed input.
			continue
		}
		// Continuation line, blank lines included: they are meaningful
		// in rich-text-decoded content.
		content.WriteString("\n")
		content.WriteString(line)
	}
	flush()

	return fields
}
