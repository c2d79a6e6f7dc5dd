// Package annotation converts between plain text and the rich-run JSON
// arrays the charting system stores inside record fields. The decode
// direction lives with the record parser; this package owns the encode
// direction used when writing new chart entries.
package annotation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultForeground is ARGB black, the charting system's default ink.
	DefaultForeground = "#FF000000"
	DefaultSize       = "12"

	// MaxRunLength caps a single run's text, matching the upstream
	// charting system's per-paragraph limit.
	MaxRunLength = 1000
)

// Run is one styled text segment. A run with empty Text marks a
// paragraph break.
type Run struct {
	Text       string `json:"Text"`
	Foreground string `json:"Foreground"`
	Size       string `json:"Size"`
}

// Encode turns plain text into a rich-run array. Consecutive non-blank
// lines accumulate into one run; each blank line flushes the current run
// and emits an empty one. Input that is already a JSON run array is
// validated and passed through unchanged.
func Encode(text string) ([]Run, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		if runs, err := decodePassthrough(trimmed); err == nil {
			return runs, nil
		}
	}

	var runs []Run
	var current strings.Builder

	flush := func() error {
		if current.Len() == 0 {
			return nil
		}
		run := Run{
			Text:       strings.TrimSpace(current.String()),
			Foreground: DefaultForeground,
			Size:       DefaultSize,
		}
		if utf8.RuneCountInString(run.Text) > MaxRunLength {
			return fmt.Errorf("テキストは%d文字以下である必要があります", MaxRunLength)
		}
		runs = append(runs, run)
		current.Reset()
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			runs = append(runs, Run{Text: "", Foreground: DefaultForeground, Size: DefaultSize})
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return runs, nil
}

// EncodeJSON is Encode plus marshaling, for callers that store the array
// as a string field.
func EncodeJSON(text string) (string, error) {
	runs, err := Encode(text)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(runs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Validate checks that every run carries a Text value within the length
// limit. Empty Text is legal, it marks a paragraph break.
func Validate(runs []Run) error {
	for i, r := range runs {
		if utf8.RuneCountInString(r.Text) > MaxRunLength {
			return fmt.Errorf("項目%d: テキストは%d文字以下である必要があります", i+1, MaxRunLength)
		}
	}
	return nil
}

// decodePassthrough accepts already-encoded input, but only when every
// element actually has a Text key. Anything looser falls back to plain
// text encoding.
func decodePassthrough(s string) ([]Run, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	runs := make([]Run, 0, len(raw))
	for i, item := range raw {
		tv, ok := item["Text"]
		if !ok {
			return nil, fmt.Errorf("項目%d: Textフィールドが必須です", i+1)
		}
		var run Run
		if err := json.Unmarshal(tv, &run.Text); err != nil {
			return nil, fmt.Errorf("項目%d: Textは文字列である必要があります", i+1)
		}
		if fg, ok := item["Foreground"]; ok {
			json.Unmarshal(fg, &run.Foreground)
		}
		if sz, ok := item["Size"]; ok {
			json.Unmarshal(sz, &run.Size)
		}
		if run.Foreground == "" {
			run.Foreground = DefaultForeground
		}
		if run.Size == "" {
			run.Size = DefaultSize
		}
		runs = append(runs, run)
	}
	if err := Validate(runs); err != nil {
		return nil, err
	}
	return runs, nil
}
