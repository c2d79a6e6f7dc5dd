// Package nextrecord prepares charts for a patient's next visit: it
// resolves guest info, surfaces the last SOAP record, and converts a
// drafted record into the rich-run format the charting system stores.
package nextrecord

// Guest is one resolved guest entry.
type Guest struct {
	GuestID        string `json:"guestId"`
	GuestName      string `json:"guestName"`
	BirthDate      string `json:"birthDate"`
	Gender         string `json:"gender"`
	LastRecordDate string `json:"lastRecordDate,omitempty"`
}

// SOAPRecord is a drafted or previously stored SOAP entry in plain text.
type SOAPRecord struct {
	Date       string `json:"date,omitempty"`
	Subject    string `json:"Subject"`
	Object     string `json:"Object"`
	Assessment string `json:"Assessment"`
	Plan       string `json:"Plan"`
}

// GuestRecord pairs a guest with their most recent SOAP record.
type GuestRecord struct {
	GuestInfo  Guest      `json:"guestInfo"`
	LastRecord SOAPRecord `json:"lastRecord"`
}

// EncodedRecord is a SOAPRecord with each section converted to a
// rich-run JSON array string.
type EncodedRecord struct {
	Date       string `json:"date,omitempty"`
	Subject    string `json:"Subject"`
	Object     string `json:"Object"`
	Assessment string `json:"Assessment"`
	Plan       string `json:"Plan"`
}

// CreateOutput is what the charting system receives for the new entry.
type CreateOutput struct {
	GuestID string        `json:"guestId"`
	Record  EncodedRecord `json:"record"`
	Created string        `json:"created"`
}

// CreateResult is the handler response for a create request.
type CreateResult struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	JSONOutput CreateOutput `json:"jsonOutput"`
}
