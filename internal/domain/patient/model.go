package patient

// Patient is one practice patient. "lastVisit" stays a display string; no
// relational integrity links it to records or appointments.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	LastVisit string `json:"last_visit"`
}

// Key implements store.Entity.
func (p Patient) Key() string { return p.ID }

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var validStatuses = map[string]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// Filters are the active filter dimensions of the patient list view.
type Filters struct {
	Search string
	Status string
}

// Stats summarizes the unfiltered patient store.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
