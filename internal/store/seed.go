package store

import "staffhub-utils/pkg/models"

// Demo dataset served until a real staff directory is connected.

var seedStaff = []models.StaffMember{
	{
		ID:         "USR-001",
		Name:       "Alex Johnson",
		Email:      "alex.j@invorg.com",
		JobTitle:   "Senior Software Engineer",
		TenantID:   "TEN-001",
		TenantName: "Innovate Corp",
		Status:     "Active",
		Skills:     []string{"React", "Node.js", "TypeScript", "GraphQL", "AWS", "Docker"},
		Leave: models.LeaveBalances{
			Sick:     models.LeaveBalance{Entitled: 10, Taken: 2},
			Vacation: models.LeaveBalance{Entitled: 20, Taken: 5},
			Personal: models.LeaveBalance{Entitled: 5, Taken: 1},
		},
	},
	{
		ID:         "USR-002",
		Name:       "Maria Garcia",
		Email:      "maria.g@invorg.com",
		JobTitle:   "Lead Product Designer",
		TenantID:   "TEN-002",
		TenantName: "Global Solutions",
		Status:     "Active",
		Skills:     []string{"Figma", "Sketch", "User Research", "Prototyping"},
		Leave: models.LeaveBalances{
			Sick:     models.LeaveBalance{Entitled: 10, Taken: 0},
			Vacation: models.LeaveBalance{Entitled: 25, Taken: 10},
			Personal: models.LeaveBalance{Entitled: 5, Taken: 2},
		},
	},
	{
		ID:         "USR-003",
		Name:       "Chen Wei",
		Email:      "chen.w@invorg.com",
		JobTitle:   "Senior Product Manager",
		TenantID:   "TEN-001",
		TenantName: "Innovate Corp",
		Status:     "Active",
		Skills:     []string{"Product Management", "Agile", "Market Analysis", "JIRA"},
		Leave: models.LeaveBalances{
			Sick:     models.LeaveBalance{Entitled: 10, Taken: 1},
			Vacation: models.LeaveBalance{Entitled: 20, Taken: 15},
			Personal: models.LeaveBalance{Entitled: 5, Taken: 0},
		},
	},
	{
		ID:         "USR-004",
		Name:       "Samira Khan",
		Email:      "samira.k@invorg.com",
		JobTitle:   "PCO Manager",
		TenantID:   "TEN-002",
		TenantName: "Global Solutions",
		Status:     "Active",
		Skills:     []string{"Recruiting", "Employee Relations", "HR Policies", "Talent Management"},
		Leave: models.LeaveBalances{
			Sick:     models.LeaveBalance{Entitled: 10, Taken: 4},
			Vacation: models.LeaveBalance{Entitled: 20, Taken: 8},
			Personal: models.LeaveBalance{Entitled: 7, Taken: 5},
		},
	},
	{
		ID:         "USR-005",
		Name:       "Ben Carter",
		Email:      "ben.c@invorg.com",
		JobTitle:   "DevOps Engineer",
		TenantID:   "TEN-003",
		TenantName: "Creative Minds Inc.",
		Status:     "Active",
		Skills:     []string{"Python", "Django", "Kubernetes", "GCP", "Docker"},
		Leave: models.LeaveBalances{
			Sick:     models.LeaveBalance{Entitled: 5, Taken: 1},
			Vacation: models.LeaveBalance{Entitled: 15, Taken: 10},
			Personal: models.LeaveBalance{Entitled: 0, Taken: 0},
		},
	},
}

var seedProjects = []models.Project{
	{
		ID:         "PROJ-001",
		Name:       "Staff Hub Portal",
		Code:       "SHP-2024",
		Owner:      "Invorg Leadership",
		Manager:    "Chen Wei",
		TenantID:   "TEN-001",
		TenantName: "Innovate Corp",
		TeamMembers: []models.TeamMember{
			{UserID: "USR-001", Name: "Alex Johnson", Role: "Lead Developer", Allocation: 100},
			{UserID: "USR-002", Name: "Maria Garcia", Role: "Lead Designer", Allocation: 50},
			{UserID: "USR-005", Name: "Ben Carter", Role: "DevOps Engineer", Allocation: 75},
		},
		TechStack: models.TechStack{
			Languages:     []string{"TypeScript"},
			Frameworks:    []string{"Next.js", "React", "Tailwind CSS"},
			Databases:     []string{"Firestore"},
			CloudProvider: "Firebase",
			Integrations:  []string{"Genkit AI"},
			DevOps:        []string{"GitHub", "Firebase App Hosting"},
		},
	},
	{
		ID:          "PROJ-002",
		Name:        "Global Logistics Dashboard",
		Code:        "GLD-2025",
		Owner:       "Global Solutions Board",
		Manager:     "Samira Khan",
		TenantID:    "TEN-002",
		TenantName:  "Global Solutions",
		TeamMembers: []models.TeamMember{},
		TechStack: models.TechStack{
			Languages:     []string{"C#", "JavaScript"},
			Frameworks:    []string{".NET Core", "Angular"},
			Databases:     []string{"SQL Server"},
			CloudProvider: "Azure",
			Integrations:  []string{"SAP"},
			DevOps:        []string{"Azure DevOps"},
		},
	},
	{
		ID:         "PROJ-003",
		Name:       "Quantum Leap",
		Code:       "QL-2024",
		Owner:      "R&D Department",
		Manager:    "Alex Johnson",
		TenantID:   "TEN-001",
		TenantName: "Innovate Corp",
		TeamMembers: []models.TeamMember{
			{UserID: "USR-001", Name: "Alex Johnson", Role: "Lead Scientist", Allocation: 100},
		},
		TechStack: models.TechStack{
			Languages:    []string{"Python", "C++"},
			Frameworks:   []string{"Qiskit", "TensorFlow"},
			Databases:    []string{"HDF5"},
			CloudProvider: "AWS",
			Integrations: []string{},
			DevOps:       []string{"Git", "Docker"},
		},
	},
}

var seedTenants = []models.Tenant{
	{
		ID:          "TEN-001",
		Name:        "Innovate Corp",
		Domain:      "innovatecorp.com",
		Description: "A forward-thinking technology company specializing in AI solutions.",
		Status:      "Active",
	},
	{
		ID:          "TEN-002",
		Name:        "Global Solutions",
		Domain:      "globalsolutions.io",
		Description: "Connecting the world with seamless logistics and supply chain management.",
		Status:      "Active",
	},
	{
		ID:          "TEN-003",
		Name:        "Creative Minds Inc.",
		Domain:      "creativeminds.design",
		Description: "A design agency that brings ideas to life with stunning visuals.",
		Status:      "Inactive",
	},
}
