// Package appointment serves the day-view appointment list. The backend
// returns raw booking rows; the display rules and formatting the UI
// relies on are owned here.
package appointment

// PatientInfo is the booking's resolved patient, 不明-filled when the
// backend could not resolve the guest number.
type PatientInfo struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birthDate"`
}

// Raw is one booking row as the backend emits it.
type Raw struct {
	ID            int         `json:"id"`
	PatientCd     string      `json:"patientCd"`
	Kbn           int         `json:"kbn"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	EndTime       string      `json:"endTime"`
	Slot          string      `json:"slot"`
	Comment       string      `json:"comment"`
	CommentDetail string      `json:"commentDetail"`
	DisplayOrder  int         `json:"displayOrder"`
	Patient       PatientInfo `json:"patient"`
}

// Appointment is the formatted booking the UI renders.
type Appointment struct {
	ID              int         `json:"id"`
	PatientCd       string      `json:"patientCd"`
	PatientInfo     PatientInfo `json:"patientInfo"`
	AppointmentDate string      `json:"appointmentDate"`
	AppointmentTime string      `json:"appointmentTime"`
	EndTime         string      `json:"endTime"`
	DisplayContent  string      `json:"displayContent"`
	Comment         string      `json:"comment"`
	CommentDetail   string      `json:"commentDetail"`
	DisplayOrder    int         `json:"displayOrder"`
}

// DayList is the handler response for one date.
type DayList struct {
	Appointments []Appointment `json:"appointments"`
	Date         string        `json:"date"`
	Total        int           `json:"total"`
}
