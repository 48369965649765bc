package record

// Seed returns the sample medical records loaded at process start.
func Seed() []Record {
	return []Record{
		{ID: "rec-001", PatientName: "John Smith", PatientID: "P-12345", RecordType: "Progress Note", Date: "2023-06-10", Provider: "Dr. Samantha Carter", Status: StatusComplete},
		{ID: "rec-002", PatientName: "Emily Johnson", PatientID: "P-12346", RecordType: "Lab Results", Date: "2023-06-09", Provider: "Dr. Samantha Carter", Status: StatusComplete},
		{ID: "rec-003", PatientName: "Michael Williams", PatientID: "P-12347", RecordType: "Radiology Report", Date: "2023-06-08", Provider: "Dr. James Wilson", Status: StatusComplete},
		{ID: "rec-004", PatientName: "Sarah Brown", PatientID: "P-12348", RecordType: "Medication Chart", Date: "2023-06-07", Provider: "Dr. Samantha Carter", Status: StatusComplete},
		{ID: "rec-005", PatientName: "John Smith", PatientID: "P-12345", RecordType: "Consultation Note", Date: "2023-06-05", Provider: "Dr. Samantha Carter", Status: StatusComplete},
		{ID: "rec-006", PatientName: "Robert Chen", PatientID: "P-12349", RecordType: "Progress Note", Date: "2023-06-15", Provider: "Dr. James Wilson", Status: StatusDraft},
		{ID: "rec-007", PatientName: "Maria Garcia", PatientID: "P-12350", RecordType: "Lab Results", Date: "2023-06-14", Provider: "Dr. Samantha Carter", Status: StatusPending},
	}
}
