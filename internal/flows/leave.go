package flows

import (
	"context"
	"fmt"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"
)

const leaveAssessmentTemplate = `You are an expert HR and Project Management assistant. A staff member has requested leave.

Staff Member: {{staff_name}}
Leave Request: {{leave_days}} day(s) of {{leave_type}} leave.
Remaining {{leave_type}} leave balance: {{remaining_leave}} days.
Assigned Projects:
{{#each projects}}
- Project: {{name}}, Role: {{role}}, Allocation: {{allocation}}%
{{else}}
- Not assigned to any active projects.
{{/each}}

1. Eligibility: First, determine if the staff member is eligible. They are eligible if their remaining leave balance is greater than or equal to the requested leave days. Provide a clear reason for the eligibility status in 'eligibility_reason'.

2. Project Impact: Analyze the impact of this absence on their assigned projects. Consider their role and allocation percentage. If they are a lead on a critical project with high allocation, the impact is high. If they have a minor role or low allocation, the impact is lower. If they are on no projects, there is no impact. Summarize this analysis in the 'project_impact' field.

Provide the result in the requested JSON format.`

var leaveAssessmentContract = &schema.Contract{
	Name: "assess_leave_request",
	Fields: []schema.Field{
		{Name: "is_eligible", Type: schema.Boolean, Description: "Whether the staff member is eligible for the requested leave."},
		{Name: "eligibility_reason", Type: schema.String, Description: "An explanation of why the staff member is or is not eligible."},
		{Name: "project_impact", Type: schema.String, Description: "An analysis of the impact the staff member's absence will have on their projects."},
	},
}

// AssessLeave evaluates a leave request for a staff member. The remaining
// balance arithmetic happens here, before the model call; the model only
// narrates eligibility and analyzes project impact. The eligibility flag in
// the result is authoritative arithmetic, never model opinion.
func (s *Service) AssessLeave(ctx context.Context, req *models.LeaveAssessmentRequest) (*models.LeaveAssessmentResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	staff, ok := s.records.FindStaffByID(req.StaffID)
	if !ok {
		return nil, utils.NewNotFoundError(fmt.Sprintf("staff member %s not found", req.StaffID))
	}

	balance, ok := staff.Leave.ForType(req.LeaveType)
	if !ok {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown leave type %q", req.LeaveType))
	}
	remaining := balance.Remaining()

	assignments := s.records.ListProjectsForStaff(req.StaffID)
	projects := make([]map[string]interface{}, 0, len(assignments))
	for _, a := range assignments {
		projects = append(projects, map[string]interface{}{
			"name":       a.Name,
			"role":       a.Role,
			"allocation": a.Allocation,
		})
	}

	p, err := prompt.Render(leaveAssessmentTemplate, map[string]interface{}{
		"staff_name":      staff.Name,
		"leave_type":      req.LeaveType,
		"leave_days":      req.LeaveDays,
		"remaining_leave": remaining,
		"projects":        projects,
	})
	if err != nil {
		return nil, err
	}

	var result models.LeaveAssessmentResult
	if err := s.gen.Generate(ctx, p, leaveAssessmentContract, &result); err != nil {
		return nil, err
	}

	eligible := remaining >= req.LeaveDays
	if result.IsEligible != eligible {
		s.logger.Warn("Model eligibility disagreed with balance arithmetic, overriding", map[string]interface{}{
			"staff_id":        req.StaffID,
			"leave_type":      req.LeaveType,
			"requested_days":  req.LeaveDays,
			"remaining_leave": remaining,
			"model_verdict":   result.IsEligible,
		})
		result.IsEligible = eligible
	}

	return &result, nil
}
