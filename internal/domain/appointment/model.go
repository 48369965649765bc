package appointment

// Appointment is one calendar entry. Date is an ISO day string; Time stays a
// display string as in the seed data.
type Appointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Type        string `json:"type"`
}

// Key implements store.Entity.
func (a Appointment) Key() string { return a.ID }

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusScheduled:  true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// Filters are the active filter dimensions of the calendar view. Date selects
// a single day; a day with no appointments is a defined empty state.
type Filters struct {
	Search string
	Date   string
	Status string
}

// Stats summarizes the unfiltered appointment store.
type Stats struct {
	Total      int            `json:"total"`
	Scheduled  int            `json:"scheduled"`
	InProgress int            `json:"in_progress"`
	Completed  int            `json:"completed"`
	Cancelled  int            `json:"cancelled"`
	ByDate     map[string]int `json:"by_date"`
}
