package record

import "time"

// RecordType is the closed set of chart entry kinds the UI distinguishes.
type RecordType string

const (
	TypeSOAP       RecordType = "SOAP"
	TypeFreeText   RecordType = "free_text"
	TypeUltrasound RecordType = "ultrasound"
	TypeOther      RecordType = "other"
)

// SOAP field labels in display order.
var soapOrder = []string{"Subject", "Object", "Assessment", "Plan"}

// SOAPContent holds the four decoded SOAP quadrants. Absent quadrants are
// empty strings, never omitted, so rendering does not branch on presence.
type SOAPContent struct {
	Subject    string `json:"subject"`
	Object     string `json:"object"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// Section is one labeled, rich-text-decoded content field of a record,
// in the order it appeared in the raw block.
type Section struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Meta carries the per-record metadata shared by every record type.
// Missing upstream values degrade to explicit 不明/"" sentinels.
type Meta struct {
	Department string `json:"department"`
	Physician  string `json:"physician"`
	Instructor string `json:"instructor,omitempty"`
	Updater    string `json:"updater,omitempty"`
	Insurance  string `json:"insurance"`
	EntryKind  string `json:"entry_kind,omitempty"`
	Setting    string `json:"setting,omitempty"`
	Tags       string `json:"tags,omitempty"`
	Category   string `json:"category"`
}

// ParsedRecord is the immutable result of parsing one record block.
// It is rebuilt wholesale on every refetch; nothing is re-derived from the
// raw field map after construction.
type ParsedRecord struct {
	RecordID    int        `json:"record_id"`
	RawDate     string     `json:"raw_date"`
	Sortable    time.Time  `json:"-"`
	DisplayDate string     `json:"display_date"`
	GroupKey    string     `json:"group_key"`
	Type        RecordType `json:"record_type"`
	SOAP        SOAPContent `json:"soap"`
	FreeText    string     `json:"free_text"`
	Sections    []Section  `json:"sections,omitempty"`
	Meta        Meta       `json:"meta"`
}

// PatientChart is the atomic output of one fetch-and-parse cycle.
type PatientChart struct {
	PatientID   string         `json:"patient_id"`
	PatientName string         `json:"patient_name"`
	BirthDate   string         `json:"birth_date"`
	Gender      string         `json:"gender"`
	Records     []ParsedRecord `json:"records"`
}
