package annotation

import (
	"strings"
	"testing"
)

func TestEncode_SingleParagraph(t *testing.T) {
	runs, err := Encode("頭痛が続いている")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Text != "頭痛が続いている" {
		t.Errorf("Text = %q", runs[0].Text)
	}
	if runs[0].Foreground != DefaultForeground || runs[0].Size != DefaultSize {
		t.Errorf("defaults not applied: %+v", runs[0])
	}
}

func TestEncode_ParagraphBreak(t *testing.T) {
	runs, err := Encode("一段落目\n\n二段落目")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3: %+v", len(runs), runs)
	}
	if runs[0].Text != "一段落目" || runs[1].Text != "" || runs[2].Text != "二段落目" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestEncode_MultilineParagraphStaysOneRun(t *testing.T) {
	runs, err := Encode("一行目\n二行目")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Text != "一行目\n二行目" {
		t.Errorf("Text = %q", runs[0].Text)
	}
}

func TestEncode_ConsecutiveBlankLines(t *testing.T) {
	runs, err := Encode("a\n\n\nb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two blank lines produce two empty runs.
	if len(runs) != 4 {
		t.Fatalf("got %d runs, want 4: %+v", len(runs), runs)
	}
	if runs[1].Text != "" || runs[2].Text != "" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestEncode_JSONPassthrough(t *testing.T) {
	in := `[{"Text":"既存","Foreground":"#FFFF0000","Size":"14"},{"Text":""}]`
	runs, err := Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Foreground != "#FFFF0000" || runs[0].Size != "14" {
		t.Errorf("existing styling lost: %+v", runs[0])
	}
	if runs[1].Foreground != DefaultForeground {
		t.Errorf("defaults not filled on bare run: %+v", runs[1])
	}
}

func TestEncode_InvalidJSONFallsBackToText(t *testing.T) {
	// Looks bracketed but is not a run array; treated as one paragraph.
	in := `[not json]`
	runs, err := Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].Text != "[not json]" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestEncode_ArrayWithoutTextKeyFallsBack(t *testing.T) {
	in := `[{"Foreground":"#FF000000"}]`
	runs, err := Encode(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].Text != in {
		t.Errorf("runs = %+v", runs)
	}
}

func TestEncode_OverlongParagraph(t *testing.T) {
	if _, err := Encode(strings.Repeat("あ", MaxRunLength+1)); err == nil {
		t.Error("expected length error")
	}
	if _, err := Encode(strings.Repeat("あ", MaxRunLength)); err != nil {
		t.Errorf("exactly %d runes should pass: %v", MaxRunLength, err)
	}
}

func TestEncode_Empty(t *testing.T) {
	runs, err := Encode("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A single empty line encodes to one paragraph-break run.
	if len(runs) != 1 || runs[0].Text != "" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestEncodeJSON(t *testing.T) {
	s, err := EncodeJSON("経過観察")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"Text":"経過観察","Foreground":"#FF000000","Size":"12"}]`
	if s != want {
		t.Errorf("EncodeJSON = %q, want %q", s, want)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Run{{Text: ""}, {Text: "ok"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	long := Run{Text: strings.Repeat("x", MaxRunLength+1)}
	if err := Validate([]Run{{Text: "ok"}, long}); err == nil {
		t.Error("expected length error")
	} else if !strings.Contains(err.Error(), "項目2") {
		t.Errorf("error should name the offending item: %v", err)
	}
}
