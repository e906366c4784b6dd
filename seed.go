package skilledhelpers

// SeedWorkers returns the workers listed before anything has been stored.
// Each call returns fresh values that the caller may modify.
func SeedWorkers() []*Worker {
	return []*Worker{
		{
			ID:          "1",
			Name:        "Ramesh Goud",
			Category:    Plumber,
			Rating:      4.8,
			Reviews:     124,
			Phone:       "+91 98480 12345",
			HourlyRate:  350,
			ImageURL:    "https://ui-avatars.com/api/?name=Ramesh+Goud&background=0D8ABC&color=fff&size=200",
			Services:    []string{"Pipe Repair", "Leakage Fix", "Tap Installation"},
			Description: "Expert plumber with 15 years of experience in Nizamabad. Specializes in residential leakage fixing and modern bathroom fittings.",
			Location:    "Nizamabad, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "2",
			Name:        "Suresh Electricals",
			Category:    Electrician,
			Rating:      4.9,
			Reviews:     89,
			Phone:       "+91 99590 67890",
			HourlyRate:  400,
			ImageURL:    "https://ui-avatars.com/api/?name=Suresh+E&background=FFC107&color=000&size=200",
			Services:    []string{"Wiring", "Fan Repair", "Inverter Setup"},
			Description: "Certified electrician available for emergency services in Hyderabad and Secunderabad areas. Quick and safe work guaranteed.",
			Location:    "Hyderabad, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "3",
			Name:        "Lakshmi Garden Services",
			Category:    Gardener,
			Rating:      4.7,
			Reviews:     56,
			Phone:       "+91 98660 54321",
			HourlyRate:  300,
			ImageURL:    "https://ui-avatars.com/api/?name=Lakshmi+G&background=4CAF50&color=fff&size=200",
			Services:    []string{"Lawn Mowing", "Planting", "Pruning"},
			Description: "Passionate gardener offering complete landscape maintenance. We bring your home garden to life with organic manure.",
			Location:    "Warangal, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "4",
			Name:        "Abdul Carpenter Works",
			Category:    Carpenter,
			Rating:      4.6,
			Reviews:     210,
			Phone:       "+91 97000 11223",
			HourlyRate:  450,
			ImageURL:    "https://ui-avatars.com/api/?name=Abdul+C&background=795548&color=fff&size=200",
			Services:    []string{"Furniture Repair", "Door Fixing", "Custom Shelves"},
			Description: "Traditional woodworker skilled in modern furniture design and antique repair. Best rates in Karimnagar.",
			Location:    "Karimnagar, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "5",
			Name:        "Venkatesh Painters",
			Category:    Painter,
			Rating:      4.5,
			Reviews:     78,
			Phone:       "+91 99490 33445",
			HourlyRate:  500,
			ImageURL:    "https://ui-avatars.com/api/?name=Venkatesh+P&background=E91E63&color=fff&size=200",
			Services:    []string{"Wall Painting", "Waterproofing", "Texture Work"},
			Description: "Professional house painting services. We use high-quality Asian Paints and ensure clean work.",
			Location:    "Nizamabad, Telangana",
			IsVerified:  false,
		},
		{
			ID:          "6",
			Name:        "Srinu Plumbing",
			Category:    Plumber,
			Rating:      4.2,
			Reviews:     45,
			Phone:       "+91 98481 22334",
			HourlyRate:  300,
			ImageURL:    "https://ui-avatars.com/api/?name=Srinu+P&background=0D8ABC&color=fff&size=200",
			Services:    []string{"Water Tank Cleaning", "Motor Repair"},
			Description: "Affordable plumbing services for water tank cleaning and motor repairs in Bodhan and surrounding villages.",
			Location:    "Bodhan, Nizamabad",
			IsVerified:  true,
		},
		{
			ID:          "7",
			Name:        "Anjali Arts",
			Category:    ArtsCrafts,
			Rating:      5.0,
			Reviews:     32,
			Phone:       "+91 88855 66778",
			HourlyRate:  600,
			ImageURL:    "https://ui-avatars.com/api/?name=Anjali+A&background=9C27B0&color=fff&size=200",
			Services:    []string{"Pottery", "Canvas Painting", "Handmade Gifts"},
			Description: "Custom handmade gifts and paintings for home decor. Workshops available for kids.",
			Location:    "Hyderabad, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "8",
			Name:        "Raju Electricals",
			Category:    Electrician,
			Rating:      4.4,
			Reviews:     67,
			Phone:       "+91 99123 45678",
			HourlyRate:  350,
			ImageURL:    "https://ui-avatars.com/api/?name=Raju+E&background=FFC107&color=000&size=200",
			Services:    []string{"Switchboard Repair", "Light Installation"},
			Description: "Specialist in LED lighting installation and old wiring replacement.",
			Location:    "Siddipet, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "9",
			Name:        "Mohd Pasha",
			Category:    Others,
			Rating:      4.7,
			Reviews:     15,
			Phone:       "+91 77020 99887",
			HourlyRate:  250,
			ImageURL:    "https://ui-avatars.com/api/?name=Mohd+P&background=607D8B&color=fff&size=200",
			Services:    []string{"AC Repair", "Fridge Repair"},
			Description: "Expert technician for Air Conditioners and Refrigerators. Summer servicing offers available.",
			Location:    "Nizamabad, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "10",
			Name:        "Sravani Crafts",
			Category:    ArtsCrafts,
			Rating:      4.9,
			Reviews:     41,
			Phone:       "+91 63000 55443",
			HourlyRate:  400,
			ImageURL:    "https://ui-avatars.com/api/?name=Sravani+C&background=9C27B0&color=fff&size=200",
			Services:    []string{"Embroidery", "Fabric Painting"},
			Description: "Beautiful hand embroidery on sarees and dresses. Custom orders accepted.",
			Location:    "Warangal, Telangana",
			IsVerified:  false,
		},
		{
			ID:          "11",
			Name:        "Krishna Wood Works",
			Category:    Carpenter,
			Rating:      4.5,
			Reviews:     98,
			Phone:       "+91 94400 33221",
			HourlyRate:  400,
			ImageURL:    "https://ui-avatars.com/api/?name=Krishna+W&background=795548&color=fff&size=200",
			Services:    []string{"Sofa Repair", "Bed Making", "Polishing"},
			Description: "All types of wood work and polishing done here. Reliable service.",
			Location:    "Hyderabad, Telangana",
			IsVerified:  true,
		},
		{
			ID:          "12",
			Name:        "Ravi Home Services",
			Category:    Others,
			Rating:      4.3,
			Reviews:     22,
			Phone:       "+91 99898 77665",
			HourlyRate:  200,
			ImageURL:    "https://ui-avatars.com/api/?name=Ravi+H&background=607D8B&color=fff&size=200",
			Services:    []string{"House Cleaning", "Pest Control"},
			Description: "Deep cleaning services for apartments and villas. Pest control for termites and cockroaches.",
			Location:    "Hyderabad, Telangana",
			IsVerified:  true,
		},
	}
}

// SeedProducts returns the products listed before anything has been stored.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:       "101",
			Name:     "Heavy Duty Hammer",
			Price:    450,
			Image:    "https://placehold.co/300x200?text=Hammer",
			Category: "Tools",
			Rating:   4.5,
		},
		{
			ID:       "102",
			Name:     "Safety Helmet",
			Price:    250,
			Image:    "https://placehold.co/300x200?text=Helmet",
			Category: "Safety",
			Rating:   4.8,
		},
		{
			ID:       "103",
			Name:     "Drill Machine Set",
			Price:    2500,
			Image:    "https://placehold.co/300x200?text=Drill",
			Category: "Tools",
			Rating:   4.7,
		},
		{
			ID:       "104",
			Name:     "Paint Brush Set",
			Price:    350,
			Image:    "https://placehold.co/300x200?text=Brushes",
			Category: "Painting",
			Rating:   4.2,
		},
	}
}
