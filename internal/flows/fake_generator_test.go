package flows

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/models"
)

// fakeGenerator stands in for the model gateway. It records what it was
// asked and decodes a canned response through the same contract check the
// real gateway uses.
type fakeGenerator struct {
	calls        int
	lastPrompt   *prompt.Prompt
	lastContract *schema.Contract
	response     string
	err          error
}

func (f *fakeGenerator) Generate(ctx context.Context, p *prompt.Prompt, contract *schema.Contract, out interface{}) error {
	f.calls++
	f.lastPrompt = p
	f.lastContract = contract
	if f.err != nil {
		return f.err
	}
	return schema.Decode([]byte(f.response), out)
}

func testStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			ID:         "USR-100",
			Name:       "Dana Fields",
			Email:      "dana.f@invorg.com",
			JobTitle:   "Backend Engineer",
			TenantID:   "TEN-100",
			TenantName: "Acme",
			Status:     "Active",
			Skills:     []string{"Go", "PostgreSQL"},
			Leave: models.LeaveBalances{
				Sick:     models.LeaveBalance{Entitled: 10, Taken: 3},
				Vacation: models.LeaveBalance{Entitled: 20, Taken: 18},
				Personal: models.LeaveBalance{Entitled: 5, Taken: 5},
			},
		},
		{
			ID:         "USR-200",
			Name:       "Rio Tan",
			Email:      "rio.t@invorg.com",
			JobTitle:   "Designer",
			TenantID:   "TEN-200",
			TenantName: "Beta LLC",
			Status:     "Active",
			Skills:     []string{"Figma"},
			Leave: models.LeaveBalances{
				Sick: models.LeaveBalance{Entitled: 10, Taken: 0},
			},
		},
		{
			ID:         "USR-300",
			Name:       "Kim Soto",
			Email:      "kim.s@invorg.com",
			JobTitle:   "Analyst",
			TenantID:   "TEN-100",
			TenantName: "Acme",
			Status:     "Active",
			Skills:     []string{"Excel"},
			Leave: models.LeaveBalances{
				Vacation: models.LeaveBalance{Entitled: 12, Taken: 2},
			},
		},
	}
}

func testProjects() []models.Project {
	return []models.Project{
		{
			ID:         "PROJ-100",
			Name:       "Ledger Rewrite",
			Code:       "LR-2026",
			Owner:      "Finance",
			Manager:    "Dana Fields",
			TenantID:   "TEN-100",
			TenantName: "Acme",
			TeamMembers: []models.TeamMember{
				{UserID: "USR-100", Name: "Dana Fields", Role: "Tech Lead", Allocation: 100},
			},
			TechStack: models.TechStack{Languages: []string{"Go"}},
		},
		{
			ID:          "PROJ-200",
			Name:        "Brand Refresh",
			Code:        "BR-2026",
			Owner:       "Marketing",
			Manager:     "Rio Tan",
			TenantID:    "TEN-200",
			TenantName:  "Beta LLC",
			TeamMembers: []models.TeamMember{{UserID: "USR-200", Name: "Rio Tan", Role: "Designer", Allocation: 50}},
		},
	}
}

func testTenants() []models.Tenant {
	return []models.Tenant{
		{ID: "TEN-100", Name: "Acme", Domain: "acme.test", Status: "Active"},
		{ID: "TEN-200", Name: "Beta LLC", Domain: "beta.test", Status: "Active"},
	}
}

func newTestService(gen *fakeGenerator) *Service {
	records := store.NewMemoryStore(testStaff(), testProjects(), testTenants())
	return NewService(gen, records)
}
