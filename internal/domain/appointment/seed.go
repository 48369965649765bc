package appointment

// Seed returns the sample appointments loaded at process start.
func Seed() []Appointment {
	return []Appointment{
		{ID: "1", PatientName: "Alex Johnson", Date: "2023-06-15", Time: "09:00 AM", Status: StatusScheduled, Type: "Check-up"},
		{ID: "2", PatientName: "Maria Garcia", Date: "2023-06-15", Time: "10:30 AM", Status: StatusScheduled, Type: "Follow-up"},
		{ID: "3", PatientName: "Robert Chen", Date: "2023-06-16", Time: "11:45 AM", Status: StatusScheduled, Type: "Consultation"},
		{ID: "4", PatientName: "Sophia Lee", Date: "2023-06-17", Time: "01:15 PM", Status: StatusScheduled, Type: "New Patient"},
		{ID: "5", PatientName: "David Wilson", Date: "2023-06-17", Time: "02:30 PM", Status: StatusScheduled, Type: "Follow-up"},
		{ID: "6", PatientName: "Emma Brown", Date: "2023-06-17", Time: "03:45 PM", Status: StatusScheduled, Type: "Check-up"},
	}
}
