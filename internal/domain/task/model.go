package task

// Task is one practice task.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}

// Key implements store.Entity.
func (t Task) Key() string { return t.ID }

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	CategoryPatient  = "patient"
	CategoryAdmin    = "admin"
	CategoryPersonal = "personal"
)

// Completion filter values; "all" disables the dimension.
const (
	CompletionPending   = "pending"
	CompletionCompleted = "completed"
)

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

var validCategories = map[string]bool{
	CategoryPatient:  true,
	CategoryAdmin:    true,
	CategoryPersonal: true,
}

// Filters are the active filter dimensions of the task list view.
type Filters struct {
	Search     string
	Completion string
	Category   string
}

// Stats summarizes the unfiltered task store.
type Stats struct {
	Total           int            `json:"total"`
	Completed       int            `json:"completed"`
	Pending         int            `json:"pending"`
	ByPriority      map[string]int `json:"by_priority"`
	PercentComplete float64        `json:"percent_complete"`
}
