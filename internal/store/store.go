// Package store provides read-only access to staff, project and tenant
// records. The AI flows treat it as an external collaborator: they query it,
// never write to it, and accept that a snapshot may be stale by the time the
// model answers.
package store

import "staffhub-utils/pkg/models"

// RecordStore is the read-only lookup contract the AI flows depend on
type RecordStore interface {
	// FindStaffByID resolves a staff member; ok is false when the ID is unknown
	FindStaffByID(id string) (*models.StaffMember, bool)

	// ListProjectsForStaff returns the assignments of one staff member,
	// collected by scanning every project's team for a matching entry
	ListProjectsForStaff(id string) []models.ProjectAssignment

	// ListProjectsForMember returns the full project records the staff
	// member appears on
	ListProjectsForMember(id string) []models.Project

	// Admin-scope collection listings
	ListAllStaff() []models.StaffMember
	ListAllProjects() []models.Project
	ListAllTenants() []models.Tenant
}
