package task

// Seed returns the sample tasks loaded at process start.
func Seed() []Task {
	return []Task{
		{
			ID:          "1",
			Title:       "Review lab results for John Smith",
			Description: "Analyze blood work results and update patient records",
			DueDate:     "2023-06-16",
			Priority:    PriorityHigh,
			AssignedTo:  "Dr. Carter",
			Completed:   false,
			Category:    CategoryPatient,
		},
		{
			ID:          "2",
			Title:       "Schedule follow-up with Emily Johnson",
			Description: "Need to discuss treatment progress and next steps",
			DueDate:     "2023-06-17",
			Priority:    PriorityMedium,
			AssignedTo:  "Dr. Carter",
			Completed:   false,
			Category:    CategoryPatient,
		},
		{
			ID:          "3",
			Title:       "Complete monthly reports",
			Description: "Finalize documentation for hospital administration",
			DueDate:     "2023-06-20",
			Priority:    PriorityMedium,
			AssignedTo:  "Dr. Carter",
			Completed:   false,
			Category:    CategoryAdmin,
		},
		{
			ID:          "4",
			Title:       "Order new medical supplies",
			Description: "Check inventory and place orders for necessary items",
			DueDate:     "2023-06-18",
			Priority:    PriorityLow,
			AssignedTo:  "Nurse Johnson",
			Completed:   true,
			Category:    CategoryAdmin,
		},
		{
			ID:          "5",
			Title:       "Attend medical conference",
			Description: "Virtual conference on cardiovascular advancements",
			DueDate:     "2023-06-25",
			Priority:    PriorityMedium,
			AssignedTo:  "Dr. Carter",
			Completed:   false,
			Category:    CategoryPersonal,
		},
	}
}
