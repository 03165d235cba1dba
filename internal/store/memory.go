package store

import "staffhub-utils/pkg/models"

// MemoryStore is an in-memory RecordStore. Records are fixed at construction;
// every lookup works on the same immutable snapshot, so it is safe for
// concurrent use without locking.
type MemoryStore struct {
	staff    []models.StaffMember
	projects []models.Project
	tenants  []models.Tenant
}

// NewMemoryStore creates a store over the given records
func NewMemoryStore(staff []models.StaffMember, projects []models.Project, tenants []models.Tenant) *MemoryStore {
	return &MemoryStore{
		staff:    staff,
		projects: projects,
		tenants:  tenants,
	}
}

// NewSeededStore creates a store preloaded with the demo dataset
func NewSeededStore() *MemoryStore {
	return NewMemoryStore(seedStaff, seedProjects, seedTenants)
}

// FindStaffByID resolves a staff member; ok is false when the ID is unknown
func (s *MemoryStore) FindStaffByID(id string) (*models.StaffMember, bool) {
	for i := range s.staff {
		if s.staff[i].ID == id {
			member := s.staff[i]
			return &member, true
		}
	}
	return nil, false
}

// ListProjectsForStaff returns the assignments of one staff member
func (s *MemoryStore) ListProjectsForStaff(id string) []models.ProjectAssignment {
	var assignments []models.ProjectAssignment
	for _, project := range s.projects {
		for _, member := range project.TeamMembers {
			if member.UserID == id {
				assignments = append(assignments, models.ProjectAssignment{
					Name:       project.Name,
					Role:       member.Role,
					Allocation: member.Allocation,
				})
			}
		}
	}
	return assignments
}

// ListProjectsForMember returns the full project records the staff member appears on
func (s *MemoryStore) ListProjectsForMember(id string) []models.Project {
	var projects []models.Project
	for _, project := range s.projects {
		for _, member := range project.TeamMembers {
			if member.UserID == id {
				projects = append(projects, project)
				break
			}
		}
	}
	return projects
}

// ListAllStaff returns every staff record
func (s *MemoryStore) ListAllStaff() []models.StaffMember {
	out := make([]models.StaffMember, len(s.staff))
	copy(out, s.staff)
	return out
}

// ListAllProjects returns every project record
func (s *MemoryStore) ListAllProjects() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ListAllTenants returns every tenant record
func (s *MemoryStore) ListAllTenants() []models.Tenant {
	out := make([]models.Tenant, len(s.tenants))
	copy(out, s.tenants)
	return out
}
