package record

import (
	"strconv"
	"strings"
)

// Field labels the upstream blob uses for record metadata. Everything else
// is content.
const (
	labelDate        = "日付"
	labelDepartment  = "診療科"
	labelPhysician   = "担当医"
	labelAuthor      = "記載者"
	labelInstructor  = "指示者"
	labelUpdater     = "更新者"
	labelDisposition = "記載方法"
	labelEntryKind   = "記載区分"
	labelInsurance   = "保険区分"
	labelSetting     = "入外区分"
	labelTags        = "記載タグ"
)

const (
	unknownValue    = "不明"
	defaultCategory = "その他"
)

var metadataLabels = map[string]bool{
	labelDate:        true,
	labelDepartment:  true,
	labelPhysician:   true,
	labelAuthor:      true,
	labelInstructor:  true,
	labelUpdater:     true,
	labelDisposition: true,
	labelEntryKind:   true,
	labelInsurance:   true,
	labelSetting:     true,
	labelTags:        true,
}

var soapLabels = map[string]bool{
	"Subject": true, "Object": true, "Assessment": true, "Plan": true,
}

// insuranceCategories maps the upstream numeric 保険自費区分 codes.
var insuranceCategories = map[int]string{
	3: "保険",
	1: "自費",
	0: "未登録",
}

// knownInsuranceNames accepts values the backend has already mapped.
var knownInsuranceNames = map[string]bool{
	"保険": true, "自費": true, "未登録": true,
}

// Classification is the type decision plus the per-type content view.
type Classification struct {
	Type     RecordType
	SOAP     SOAPContent
	FreeText string
	Sections []Section
	Meta     Meta
}

// Classify determines a record's type and extracts the canonical content
// and metadata. It never fails: missing or unmapped data degrades to
// explicit 不明/empty sentinels.
func Classify(fields *FieldMap) Classification {
	c := Classification{
		Meta:     extractMeta(fields),
		Type:     decideType(fields),
		Sections: contentSections(fields),
	}

	if c.Type == TypeSOAP {
		c.SOAP = SOAPContent{
			Subject:    ExtractText(fields.Get("Subject")),
			Object:     ExtractText(fields.Get("Object")),
			Assessment: ExtractText(fields.Get("Assessment")),
			Plan:       ExtractText(fields.Get("Plan")),
		}
		return c
	}

	texts := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		texts = append(texts, s.Text)
	}
	c.FreeText = strings.Join(texts, "\n\n")
	return c
}

// decideType applies the disposition field first, then falls back to the
// presence of SOAP quadrants.
func decideType(fields *FieldMap) RecordType {
	disposition := strings.TrimSpace(fields.Get(labelDisposition))
	switch {
	case disposition == "SOAP":
		return TypeSOAP
	case strings.Contains(disposition, "自由記載") && strings.Contains(disposition, "超音波"):
		return TypeUltrasound
	case strings.Contains(disposition, "超音波"):
		return TypeUltrasound
	case strings.Contains(disposition, "自由記載"):
		return TypeFreeText
	}

	for label := range soapLabels {
		if strings.TrimSpace(fields.Get(label)) != "" {
			return TypeSOAP
		}
	}
	return TypeOther
}

// contentSections decodes every non-metadata, non-SOAP field in first-seen
// order, skipping values that are empty after decoding.
func contentSections(fields *FieldMap) []Section {
	var sections []Section
	for _, label := range fields.Labels() {
		if metadataLabels[label] || soapLabels[label] {
			continue
		}
		text := strings.TrimSpace(ExtractText(fields.Get(label)))
		if text == "" {
			continue
		}
		sections = append(sections, Section{Label: label, Text: text})
	}
	return sections
}

func extractMeta(fields *FieldMap) Meta {
	m := Meta{
		Department: valueOr(fields.Get(labelDepartment), unknownValue),
		Instructor: strings.TrimSpace(fields.Get(labelInstructor)),
		Updater:    strings.TrimSpace(fields.Get(labelUpdater)),
		EntryKind:  strings.TrimSpace(fields.Get(labelEntryKind)),
		Setting:    strings.TrimSpace(fields.Get(labelSetting)),
		Tags:       strings.TrimSpace(fields.Get(labelTags)),
		Insurance:  insuranceCategory(fields.Get(labelInsurance)),
	}

	physician := strings.TrimSpace(fields.Get(labelPhysician))
	if physician == "" {
		physician = strings.TrimSpace(fields.Get(labelAuthor))
	}
	m.Physician = valueOr(physician, unknownValue)

	// Tab category: department, then disposition, then a catch-all.
	switch {
	case strings.TrimSpace(fields.Get(labelDepartment)) != "":
		m.Category = strings.TrimSpace(fields.Get(labelDepartment))
	case strings.TrimSpace(fields.Get(labelDisposition)) != "":
		m.Category = strings.TrimSpace(fields.Get(labelDisposition))
	default:
		m.Category = defaultCategory
	}
	return m
}

// insuranceCategory maps the 保険自費区分 code (or an already-mapped name)
// to its display category. Unmapped codes degrade to 不明.
func insuranceCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return unknownValue
	}
	if code, err := strconv.Atoi(raw); err == nil {
		if name, ok := insuranceCategories[code]; ok {
			return name
		}
		return unknownValue
	}
	if knownInsuranceNames[raw] {
		return raw
	}
	return unknownValue
}

func valueOr(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
