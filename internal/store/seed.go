package store

import "github.com/jeevanM12/Embiodary/internal/models"

// Seed loads the demo catalog, roster, orders and offers so a fresh
// session has something to browse. Seeding bypasses the mutators on
// purpose: no notifications, no log entries.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.designs = []models.Design{
		{
			ID:          "1",
			Title:       "Royal Bridal Lehenga",
			Category:    models.CategoryBridal,
			Price:       15000,
			Description: "Intricate zardosi work.",
			Images: []string{
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&q=80&w=400",
				"https://images.unsplash.com/photo-1589810635657-232948472d98?auto=format&fit=crop&q=80&w=400",
			},
		},
		{
			ID:          "2",
			Title:       "Floral Silk Blouse",
			Category:    models.CategoryBlouse,
			Price:       3500,
			Description: "Hand embroidered silk.",
			Images:      []string{"https://images.unsplash.com/photo-1583391733958-e0237c568f23?auto=format&fit=crop&q=80&w=400"},
		},
		{
			ID:          "3",
			Title:       "Cute Elephant Motif",
			Category:    models.CategoryKids,
			Price:       1200,
			Description: "Playful design for kids.",
			Images:      []string{"https://images.unsplash.com/photo-1621334066925-5028448b1c4e?auto=format&fit=crop&q=80&w=400"},
		},
	}

	s.employees = []models.User{
		{ID: "emp1", EmployeeID: "100100", Name: "Sarah Stitch", Role: models.RoleEmployee, Phone: "9876500001"},
		{ID: "emp2", EmployeeID: "100101", Name: "Mike Thread", Role: models.RoleEmployee, Phone: "9876500002"},
		{ID: "emp3", EmployeeID: "100102", Name: "Jenny Logistics", Role: models.RoleEmployee, Phone: "9876500003"},
	}

	s.orders = []models.Order{
		{
			ID:                 "1715001",
			CustomerID:         "cust_demo",
			CustomerName:       "Alice Baker",
			CustomerPhone:      "9876543210",
			Category:           models.CategoryBridal,
			Description:        "Red bridal lehenga with heavy gold work",
			Status:             models.StatusInProgress,
			PaymentStatus:      models.PaymentVerified,
			DueDate:            "2024-06-15",
			Address:            models.Address{Line1: "123 Rose St", City: "Mumbai", State: "MH", PinCode: "400001"},
			TotalAmount:        15000,
			AssignedEmployeeID: "emp1",
			DesignID:           "1",
		},
		{
			ID:            "1715002",
			CustomerID:    "cust_demo_2",
			CustomerName:  "Carol Smith",
			CustomerPhone: "9876543211",
			Category:      models.CategoryNameEmbroidery,
			Description:   `Name "Rohan" on white towel`,
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentPending,
			DueDate:       "2024-05-20",
			Address:       models.Address{Line1: "45 Blue Ave", City: "Delhi", State: "DL", PinCode: "110001"},
			TotalAmount:   500,
			IsCOD:         true,
		},
		{
			ID:                 "1715003",
			CustomerID:         "cust_demo_3",
			CustomerName:       "Raj Patel",
			CustomerPhone:      "9876543212",
			Category:           models.CategoryCustom,
			Description:        "Custom logo on jacket",
			Status:             models.StatusDelivered,
			PaymentStatus:      models.PaymentVerified,
			DueDate:            "2024-04-10",
			Address:            models.Address{Line1: "88 Green Rd", City: "Pune", State: "MH", PinCode: "411001"},
			TotalAmount:        2500,
			AssignedEmployeeID: "emp1",
		},
	}

	s.offers = []models.Offer{
		{ID: "1", Text: "Grand Opening Sale: Flat 20% OFF on Bridal Wear"},
		{ID: "2", Text: "Free Shipping on Custom Orders above ₹5000"},
		{ID: "3", Text: "Get a Free Design Consultation Today!"},
	}
}
