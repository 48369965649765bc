package prescription

// Item is one prescribed medicine line.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
}

// Prescription carries the patient header, the prescribed lines and free-form
// notes. Age, weight and phone are optional.
type Prescription struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	PatientAge    int    `json:"patient_age,omitempty"`
	PatientWeight string `json:"patient_weight,omitempty"`
	PatientPhone  string `json:"patient_phone,omitempty"`
	Date          string `json:"date"`
	Medicines     []Item `json:"medicines"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
}

func (p Prescription) Key() string { return p.ID }

// Lifecycle states. A prescription starts as a draft.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusCompleted = "completed"
)

var validStatuses = map[string]bool{
	StatusDraft:     true,
	StatusSent:      true,
	StatusCompleted: true,
}

// Filters narrows the prescription list.
type Filters struct {
	Search string
	Status string
}

// Stats summarizes the unfiltered store by lifecycle state.
type Stats struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Sent      int `json:"sent"`
	Completed int `json:"completed"`
}
