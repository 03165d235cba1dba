package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStoreFindStaffByID(t *testing.T) {
	s := NewSeededStore()

	staff, ok := s.FindStaffByID("USR-001")
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", staff.Name)
	assert.Contains(t, staff.Skills, "React")
	assert.Equal(t, 8.0, staff.Leave.Sick.Remaining())

	_, ok = s.FindStaffByID("USR-404")
	assert.False(t, ok)
}

func TestSeededStoreProjectAssignments(t *testing.T) {
	s := NewSeededStore()

	assignments := s.ListProjectsForStaff("USR-001")
	require.Len(t, assignments, 2)
	assert.Equal(t, "Staff Hub Portal", assignments[0].Name)
	assert.Equal(t, "Lead Developer", assignments[0].Role)
	assert.Equal(t, 100, assignments[0].Allocation)
	assert.Equal(t, "Quantum Leap", assignments[1].Name)

	assert.Empty(t, s.ListProjectsForStaff("USR-004"), "managers are not team members")
}

func TestSeededStoreProjectsForMember(t *testing.T) {
	s := NewSeededStore()

	projects := s.ListProjectsForMember("USR-002")
	require.Len(t, projects, 1)
	assert.Equal(t, "PROJ-001", projects[0].ID)
}

func TestSeededStoreListAll(t *testing.T) {
	s := NewSeededStore()

	assert.Len(t, s.ListAllStaff(), 5)
	assert.Len(t, s.ListAllProjects(), 3)
	assert.Len(t, s.ListAllTenants(), 3)
}

func TestFindStaffByIDReturnsACopy(t *testing.T) {
	s := NewSeededStore()

	first, ok := s.FindStaffByID("USR-001")
	require.True(t, ok)
	first.Name = "changed"

	second, _ := s.FindStaffByID("USR-001")
	assert.Equal(t, "Alex Johnson", second.Name)
}
