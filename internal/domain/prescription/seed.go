package prescription

// Seed returns the sample prescriptions loaded at process start.
func Seed() []Prescription {
	return []Prescription{
		{
			ID:            "rx1",
			PatientID:     "p1",
			PatientName:   "John Smith",
			PatientAge:    45,
			PatientWeight: "75 kg",
			PatientPhone:  "(555) 123-4567",
			Date:          "2023-06-15",
			Medicines: []Item{
				{
					ID:           "m1",
					Name:         "Amoxicillin",
					Dosage:       "500mg",
					Instructions: "Take 1 pill 3 times daily with food",
					Duration:     "10 days",
				},
				{
					ID:           "m8",
					Name:         "Ibuprofen",
					Dosage:       "400mg",
					Instructions: "Take 1 pill every 6 hours as needed for pain",
					Duration:     "5 days",
				},
			},
			Notes:  "Patient allergic to penicillin. Follow up in 2 weeks.",
			Status: StatusSent,
		},
		{
			ID:            "rx2",
			PatientID:     "p2",
			PatientName:   "Emily Johnson",
			PatientAge:    32,
			PatientWeight: "60 kg",
			PatientPhone:  "(555) 234-5678",
			Date:          "2023-06-14",
			Medicines: []Item{
				{
					ID:           "m7",
					Name:         "Sertraline",
					Dosage:       "50mg",
					Instructions: "Take 1 pill daily in the morning",
					Duration:     "30 days",
				},
			},
			Notes:  "Renewal prescription. Patient reports improvement in symptoms.",
			Status: StatusCompleted,
		},
	}
}
