package medicine

// Seed returns the sample inventory loaded at process start.
func Seed() []Medicine {
	return []Medicine{
		{
			ID:           "m1",
			Name:         "Amoxicillin",
			Type:         "Antibiotic",
			Dosage:       "500mg",
			Manufacturer: "Pfizer Inc.",
			Stock:        125,
			Expiry:       "2025-06-15",
			Price:        12.99,
		},
		{
			ID:           "m2",
			Name:         "Lisinopril",
			Type:         "Blood Pressure",
			Dosage:       "10mg",
			Manufacturer: "Merck & Co.",
			Stock:        85,
			Expiry:       "2024-11-20",
			Price:        15.50,
		},
		{
			ID:           "m3",
			Name:         "Atorvastatin",
			Type:         "Cholesterol",
			Dosage:       "20mg",
			Manufacturer: "AstraZeneca",
			Stock:        62,
			Expiry:       "2025-03-10",
			Price:        22.75,
		},
		{
			ID:           "m4",
			Name:         "Metformin",
			Type:         "Diabetes",
			Dosage:       "1000mg",
			Manufacturer: "Novartis",
			Stock:        114,
			Expiry:       "2025-01-05",
			Price:        8.25,
		},
		{
			ID:           "m5",
			Name:         "Levothyroxine",
			Type:         "Thyroid",
			Dosage:       "50mcg",
			Manufacturer: "GlaxoSmithKline",
			Stock:        95,
			Expiry:       "2024-10-15",
			Price:        14.80,
		},
		{
			ID:           "m6",
			Name:         "Albuterol",
			Type:         "Respiratory",
			Dosage:       "90mcg",
			Manufacturer: "Roche",
			Stock:        38,
			Expiry:       "2024-08-22",
			Price:        19.95,
		},
		{
			ID:           "m7",
			Name:         "Sertraline",
			Type:         "Antidepressant",
			Dosage:       "50mg",
			Manufacturer: "Eli Lilly",
			Stock:        72,
			Expiry:       "2025-04-18",
			Price:        17.35,
		},
		{
			ID:           "m8",
			Name:         "Ibuprofen",
			Type:         "Pain Reliever",
			Dosage:       "400mg",
			Manufacturer: "Johnson & Johnson",
			Stock:        186,
			Expiry:       "2025-09-30",
			Price:        6.99,
		},
	}
}
