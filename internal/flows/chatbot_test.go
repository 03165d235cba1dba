package flows

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/models"
)

func testRecords() store.RecordStore {
	return store.NewMemoryStore(testStaff(), testProjects(), testTenants())
}

func TestBuildChatContextAdminSeesEverything(t *testing.T) {
	ctx := BuildChatContext(testRecords(), "USR-100", "admin")

	admin, ok := ctx.(*AdminContext)
	require.True(t, ok)
	assert.Len(t, admin.Staff, 3)
	assert.Len(t, admin.Projects, 2)
	assert.Len(t, admin.Tenants, 2)
}

func TestBuildChatContextStaffIsRedacted(t *testing.T) {
	ctx := BuildChatContext(testRecords(), "USR-100", "staff")

	staff, ok := ctx.(*StaffContext)
	require.True(t, ok)
	require.NotNil(t, staff.CurrentUser)
	assert.Equal(t, "USR-100", staff.CurrentUser.ID)

	require.Len(t, staff.MyProjects, 1)
	assert.Equal(t, "PROJ-100", staff.MyProjects[0].ID)

	// Nothing about other staff or tenants may appear in the serialized context
	raw, err := json.Marshal(staff)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Rio Tan")
	assert.NotContains(t, string(raw), "USR-200")
	assert.NotContains(t, string(raw), "Brand Refresh")
	assert.NotContains(t, string(raw), "Beta LLC")
}

func TestBuildChatContextUnknownStaffIsEmpty(t *testing.T) {
	ctx := BuildChatContext(testRecords(), "USR-999", "staff")

	staff, ok := ctx.(*StaffContext)
	require.True(t, ok)
	assert.Nil(t, staff.CurrentUser)
	assert.Empty(t, staff.MyProjects)

	raw, err := json.Marshal(staff)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestChatPromptScopesContextByRole(t *testing.T) {
	gen := &fakeGenerator{response: `{"response": "You are on the Ledger Rewrite project."}`}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), &models.ChatRequest{
		Query:    "What projects am I on?",
		UserID:   "USR-100",
		UserRole: "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "You are on the Ledger Rewrite project.", result.Response)
	assert.Nil(t, result.Link)

	require.NotNil(t, gen.lastPrompt)
	assert.Contains(t, gen.lastPrompt.Text, "Current User Role: staff")
	assert.Contains(t, gen.lastPrompt.Text, "Dana Fields")
	assert.NotContains(t, gen.lastPrompt.Text, "Rio Tan", "other staff must never reach the prompt for a staff user")
	assert.NotContains(t, gen.lastPrompt.Text, "Beta LLC")
}

func TestChatAdminPromptContainsAllRecords(t *testing.T) {
	gen := &fakeGenerator{response: `{"response": "There are 3 staff members."}`}
	svc := newTestService(gen)

	_, err := svc.Chat(context.Background(), &models.ChatRequest{
		Query:    "How many staff members are there?",
		UserID:   "USR-100",
		UserRole: "admin",
	})
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt.Text, "Dana Fields")
	assert.Contains(t, gen.lastPrompt.Text, "Rio Tan")
	assert.Contains(t, gen.lastPrompt.Text, "Acme")
	assert.Contains(t, gen.lastPrompt.Text, "Beta LLC")
}

func TestChatRendersHistory(t *testing.T) {
	gen := &fakeGenerator{response: `{"response": "As I said, two projects."}`}
	svc := newTestService(gen)

	_, err := svc.Chat(context.Background(), &models.ChatRequest{
		Query:    "Can you repeat that?",
		UserID:   "USR-100",
		UserRole: "admin",
		History: []models.ChatTurn{
			{Role: "user", Content: "How many projects are there?"},
			{Role: "model", Content: "There are two projects."},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt.Text, "user: How many projects are there?")
	assert.Contains(t, gen.lastPrompt.Text, "model: There are two projects.")
}

func TestChatReturnsNavigationLink(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"response": "You can request leave here.", "link": {"text": "Request Leave", "href": "/staff/my-leave"}}`,
	}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), &models.ChatRequest{
		Query:    "How do I apply for leave?",
		UserID:   "USR-100",
		UserRole: "staff",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Link)
	assert.Equal(t, "Request Leave", result.Link.Text)
	assert.Equal(t, "/staff/my-leave", result.Link.Href)
}

func TestChatInvalidRole(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen)

	_, err := svc.Chat(context.Background(), &models.ChatRequest{
		Query:    "hello",
		UserID:   "USR-100",
		UserRole: "superuser",
	})
	require.Error(t, err)
	assert.Zero(t, gen.calls)
}
