package patient

// Seed returns the sample patients loaded at process start.
func Seed() []Patient {
	return []Patient{
		{
			ID:        "p1",
			Name:      "John Smith",
			Age:       45,
			Gender:    "Male",
			Phone:     "(555) 123-4567",
			Email:     "john.smith@example.com",
			Address:   "123 Main St, Springfield, IL",
			Status:    StatusActive,
			LastVisit: "May 15, 2023",
		},
		{
			ID:        "p2",
			Name:      "Emily Johnson",
			Age:       32,
			Gender:    "Female",
			Phone:     "(555) 234-5678",
			Email:     "emily.johnson@example.com",
			Address:   "456 Oak Ave, Springfield, IL",
			Status:    StatusActive,
			LastVisit: "June 2, 2023",
		},
		{
			ID:        "p3",
			Name:      "Michael Williams",
			Age:       58,
			Gender:    "Male",
			Phone:     "(555) 345-6789",
			Email:     "michael.williams@example.com",
			Address:   "789 Elm St, Springfield, IL",
			Status:    StatusInactive,
			LastVisit: "March 10, 2023",
		},
		{
			ID:        "p4",
			Name:      "Sarah Brown",
			Age:       27,
			Gender:    "Female",
			Phone:     "(555) 456-7890",
			Email:     "sarah.brown@example.com",
			Address:   "321 Pine Rd, Springfield, IL",
			Status:    StatusActive,
			LastVisit: "June 10, 2023",
		},
	}
}
