package record

import (
	"strings"
	"testing"
)

const sampleBlob = "日付：20240301\n" +
	"診療科：内科\n" +
	"担当医：山田\n" +
	"記載方法：SOAP\n" +
	"保険区分：3\n" +
	"Subject：[{\"Text\":\"頭痛\"},{\"Text\":\"\"},{\"Text\":\"三日間\"}]\n" +
	"Plan：経過観察\n" +
	"\n---\n\n" +
	"日付：20240305\n" +
	"診療科：産婦人科\n" +
	"記載者：佐藤\n" +
	"記載方法：超音波\n" +
	"所見：心拍確認\n" +
	"\n---\n\n" +
	"診療科：内科\n" +
	"記載方法：自由記載\n" +
	"経過：変わりなし"

func TestParse_EndToEnd(t *testing.T) {
	records := Parse(sampleBlob)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Sorted date-descending; the dateless record sorts last.
	if records[0].RawDate != "20240305" || records[1].RawDate != "20240301" {
		t.Errorf("sort order wrong: %q then %q", records[0].RawDate, records[1].RawDate)
	}
	if records[2].RawDate != "" {
		t.Errorf("dateless record should be last, got %q", records[2].RawDate)
	}

	ultrasound := records[0]
	if ultrasound.Type != TypeUltrasound {
		t.Errorf("Type = %v, want ultrasound", ultrasound.Type)
	}
	if ultrasound.Meta.Physician != "佐藤" {
		t.Errorf("Physician = %q, want 佐藤 (記載者 fallback)", ultrasound.Meta.Physician)
	}
	if !strings.Contains(ultrasound.FreeText, "心拍確認") {
		t.Errorf("FreeText = %q", ultrasound.FreeText)
	}

	soap := records[1]
	if soap.Type != TypeSOAP {
		t.Errorf("Type = %v, want SOAP", soap.Type)
	}
	if soap.SOAP.Subject != "頭痛\n\n三日間" {
		t.Errorf("Subject = %q (rich text should be decoded)", soap.SOAP.Subject)
	}
	if soap.Meta.Insurance != "保険" {
		t.Errorf("Insurance = %q, want 保険", soap.Meta.Insurance)
	}
	if soap.DisplayDate != "2024年03月01日" {
		t.Errorf("DisplayDate = %q", soap.DisplayDate)
	}
	if soap.GroupKey != "2024/03/01" {
		t.Errorf("GroupKey = %q", soap.GroupKey)
	}

	free := records[2]
	if free.Type != TypeFreeText {
		t.Errorf("Type = %v, want free text", free.Type)
	}
	if free.DisplayDate != UnknownDateDisplay {
		t.Errorf("DisplayDate = %q, want %q", free.DisplayDate, UnknownDateDisplay)
	}
	if free.GroupKey != UnknownDateGroupKey {
		t.Errorf("GroupKey = %q, want %q", free.GroupKey, UnknownDateGroupKey)
	}
}

func TestParse_RecordIDsFollowSegmentationOrder(t *testing.T) {
	records := Parse(sampleBlob)
	// Record ids are assigned before sorting, so the SOAP block (first in
	// the blob) keeps id 0 even though it is no longer first.
	byID := make(map[int]ParsedRecord)
	for _, r := range records {
		byID[r.RecordID] = r
	}
	if byID[0].RawDate != "20240301" {
		t.Errorf("record 0 RawDate = %q, want 20240301", byID[0].RawDate)
	}
	if byID[1].RawDate != "20240305" {
		t.Errorf("record 1 RawDate = %q, want 20240305", byID[1].RawDate)
	}
}

func TestParse_EmptyBlob(t *testing.T) {
	if records := Parse(""); len(records) != 0 {
		t.Errorf("got %d records for empty blob", len(records))
	}
}

func TestParse_NeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"---",
		"\n\n---\n\n",
		"：値だけ\nラベルなし",
		strings.Repeat("日付：x\n\n---\n\n", 50),
	}
	for _, in := range inputs {
		_ = Parse(in) // must not panic
	}
}
