package record

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The upstream charting system stores some field values as a JSON array of
// rich-text "runs": [{"Text":"...","Foreground":"#AARRGGBB","Size":"N"},...],
// sometimes re-escaped by one or more serialization layers (doubled quotes,
// backslash-escaped quotes, an extra outer quote wrapping). ExtractText
// collapses any of those shapes back to plain paragraph-structured text.
//
// Strategy order: structured parse → pattern scan → identity. Every tier is
// total; the function never fails and is the identity on plain text.

var textRunPattern = regexp.MustCompile(`"Text"\s*:\s*"([^"\\]*)"`)

// ExtractText decodes a rich-text run value to plain text. A value without
// the "Text" marker is returned unchanged.
func ExtractText(raw string) string {
	if !strings.Contains(raw, `"Text"`) && !strings.Contains(raw, `\"Text\"`) {
		return raw
	}

	// Strict parse of the value as-is comes first: un-escaping would
	// corrupt a well-formed array whose empty Text values look like
	// doubled quotes.
	if out, ok := decodeRuns(strings.TrimSpace(raw)); ok {
		return out
	}

	normalized := normalizeRunEscaping(raw)
	if out, ok := decodeRuns(normalized); ok {
		return out
	}
	if out, ok := scanRuns(strings.TrimSpace(raw)); ok {
		return out
	}
	if out, ok := scanRuns(normalized); ok {
		return out
	}
	return raw
}

// normalizeRunEscaping undoes the escaping layers the upstream system
// applies inconsistently: one layer of enclosing quotes, doubled quotes,
// backslash-escaped quotes.
func normalizeRunEscaping(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `""`, `"`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}

// decodeRuns attempts a strict JSON-array parse. Consecutive non-empty Text
// values are inline fragments of one paragraph and concatenate without a
// separator; an empty Text run flushes the paragraph and emits a blank line.
func decodeRuns(s string) (string, bool) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return "", false
	}

	seen := false
	var parts []string
	var paragraph strings.Builder

	for _, item := range items {
		rawText, ok := item["Text"]
		if !ok {
			continue
		}
		seen = true
		var text string
		if err := json.Unmarshal(rawText, &text); err != nil {
			continue
		}
		if text == "" {
			if paragraph.Len() > 0 {
				parts = append(parts, paragraph.String())
				paragraph.Reset()
			}
			parts = append(parts, "")
			continue
		}
		paragraph.WriteString(text)
	}
	if paragraph.Len() > 0 {
		parts = append(parts, paragraph.String())
	}

	if !seen {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// scanRuns is the degraded tier for malformed or partial JSON (the nested
// multi-block variants seen in real data): every "Text":"..." capture is
// concatenated in order, empty captures becoming literal newlines.
func scanRuns(s string) (string, bool) {
	matches := textRunPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return "", false
	}

	var b strings.Builder
	for _, m := range matches {
		if m[1] == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(m[1])
	}
	return b.String(), true
}
