package record

// Record is one medical record row. PatientID is display data; it is not
// validated against the patient store.
type Record struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	PatientID   string `json:"patient_id"`
	RecordType  string `json:"record_type"`
	Date        string `json:"date"`
	Provider    string `json:"provider"`
	Status      string `json:"status"`
}

// Key implements store.Entity.
func (r Record) Key() string { return r.ID }

const (
	StatusComplete = "complete"
	StatusPending  = "pending"
	StatusDraft    = "draft"
)

var validStatuses = map[string]bool{
	StatusComplete: true,
	StatusPending:  true,
	StatusDraft:    true,
}

// Filters are the active filter dimensions of the records table.
type Filters struct {
	Search string
	Status string
}

// Stats summarizes the unfiltered record store by status.
type Stats struct {
	Total    int `json:"total"`
	Complete int `json:"complete"`
	Pending  int `json:"pending"`
	Draft    int `json:"draft"`
}
