package flows

import (
	"context"
	"encoding/json"
	"fmt"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/models"
)

const chatbotTemplate = `You are an expert AI assistant for the Invorg Staff Hub platform. Your role is to answer questions based ONLY on the data provided in the context.

Current User Role: {{user_role}}

Context Data:
{{{context}}}
---

Conversation so far:
{{#each history}}
{{role}}: {{{content}}}
{{else}}
(no prior messages)
{{/each}}

User's Question:
"{{query}}"

Instructions:
1. Analyze the user's question and the provided context data.
2. If the user's question implies an action they want to take (e.g., "how do I apply for leave?", "take me to the timesheet", "log my hours"), provide a direct link to the relevant page in the 'link' field.
    - For leave requests, the link text should be "Request Leave" and the href should be "/staff/my-leave".
    - For timesheet entries ('E6'), the link text should be "Log Time" and the href should be "/staff/e6".
3. If the user is an 'admin', you can use all the provided data to answer the question.
4. If the user is a 'staff' member, you MUST only answer questions about their OWN data. Do not reveal information about other staff, tenants, or projects they are not a part of. If they ask about something they don't have access to, politely refuse by saying "I'm sorry, I can only provide information about your own data." or something similar.
5. If the question cannot be answered with the provided context, say "I'm sorry, I don't have enough information to answer that question."
6. Be concise and helpful in your response.`

var chatbotContract = &schema.Contract{
	Name: "chatbot",
	Fields: []schema.Field{
		{Name: "response", Type: schema.String, Description: "The chatbot's answer to the query."},
		{Name: "link", Type: schema.Object, Description: "A link to a relevant page if the user's query implies a navigation action.", Optional: true, Fields: []schema.Field{
			{Name: "text", Type: schema.String, Description: "The call-to-action text for the link."},
			{Name: "href", Type: schema.String, Description: "The URL to redirect to."},
		}},
	},
}

// AdminContext is the full platform snapshot exposed to admin users
type AdminContext struct {
	Staff    []models.StaffMember `json:"staff"`
	Projects []models.Project     `json:"projects"`
	Tenants  []models.Tenant      `json:"tenants"`
}

// StaffContext is the redacted snapshot exposed to staff users: their own
// record and the projects they are a member of, nothing else
type StaffContext struct {
	CurrentUser *models.StaffMember `json:"currentUser,omitempty"`
	MyProjects  []models.Project    `json:"myProjects,omitempty"`
}

// BuildChatContext assembles the context data the model is allowed to see
// for a given user. Redaction happens here, before any prompt is built; a
// staff user's context never contains other staff members or tenants.
func BuildChatContext(records store.RecordStore, userID, userRole string) interface{} {
	if userRole == "admin" {
		return &AdminContext{
			Staff:    records.ListAllStaff(),
			Projects: records.ListAllProjects(),
			Tenants:  records.ListAllTenants(),
		}
	}

	ctx := &StaffContext{}
	if user, ok := records.FindStaffByID(userID); ok {
		ctx.CurrentUser = user
		ctx.MyProjects = records.ListProjectsForMember(userID)
	}
	return ctx
}

// Chat answers a platform question scoped to the caller's role
func (s *Service) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	contextData := BuildChatContext(s.records, req.UserID, req.UserRole)
	contextJSON, err := json.MarshalIndent(contextData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat context: %w", err)
	}

	history := make([]map[string]interface{}, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, map[string]interface{}{
			"role":    turn.Role,
			"content": turn.Content,
		})
	}

	p, err := prompt.Render(chatbotTemplate, map[string]interface{}{
		"user_role": req.UserRole,
		"context":   string(contextJSON),
		"history":   history,
		"query":     req.Query,
	})
	if err != nil {
		return nil, err
	}

	var result models.ChatResult
	if err := s.gen.Generate(ctx, p, chatbotContract, &result); err != nil {
		return nil, err
	}

	s.logger.Debug("Chat query answered", map[string]interface{}{
		"user_role": req.UserRole,
		"has_link":  result.Link != nil,
	})
	return &result, nil
}
