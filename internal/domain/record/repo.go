package record

import "context"

// Bundle is the raw payload the records backend returns for one patient:
// the concatenated record blob plus sidecar demographics. An in-body Error
// means the backend answered but has nothing for this patient.
type Bundle struct {
	Records     string `json:"records"`
	PatientName string `json:"patientName"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender"`
	Error       string `json:"error,omitempty"`
}

// RecordSource fetches the raw record bundle for a patient. Implementations
// own transport concerns (timeouts, retries); the parsing pipeline never
// performs I/O.
type RecordSource interface {
	FetchPatientRecords(ctx context.Context, patientID string) (*Bundle, error)
}
