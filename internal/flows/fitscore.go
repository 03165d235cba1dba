package flows

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/pkg/models"
)

const fitScoreTemplate = `You are an expert HR and project management assistant. Your task is to analyze a staff member's skills against a project's required technical stack and provide a "fit score".

Follow these steps:
1. Compare the list of staff skills with the list of technologies required for the project.
2. Calculate a 'fit_score' as a percentage. The score should be (number of matching skills / number of project technologies) * 100.
3. Identify which skills from the project's tech stack the staff member has ('matching_skills').
4. Identify which skills from the project's tech stack the staff member does not have ('missing_skills').
5. Write a brief 'explanation' summarizing the fit. For example: "Good fit, matching on 3 of 5 key technologies." or "Partial fit, key skills like React are missing."

Project Tech Stack:
{{#each project_tech_stack}}
- {{{this}}}
{{/each}}

Staff Member's Skills:
{{#each staff_skills}}
- {{{this}}}
{{/each}}

Provide the result in the requested JSON format.`

var fitScoreContract = &schema.Contract{
	Name: "calculate_fit_score",
	Fields: []schema.Field{
		{Name: "fit_score", Type: schema.Number, Description: "A percentage score from 0 to 100 representing how well the staff member's skills match the project's tech stack."},
		{Name: "explanation", Type: schema.String, Description: "A brief explanation of the score, highlighting key matches and gaps."},
		{Name: "matching_skills", Type: schema.StringArray, Description: "A list of skills that the staff member has which match the project requirements."},
		{Name: "missing_skills", Type: schema.StringArray, Description: "A list of required project skills that the staff member is missing."},
	},
}

// CalculateFitScore scores how well a set of staff skills covers a project's
// required technologies.
//
// Two degenerate inputs never reach the model. A project with no declared
// tech stack is a perfect fit for anyone, and a staff member with no listed
// skills cannot match anything. Both are answered deterministically, in that
// order, so an empty tech stack wins even when the skill list is also empty.
func (s *Service) CalculateFitScore(ctx context.Context, req *models.FitScoreRequest) (*models.FitScoreResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	if len(req.ProjectTechStack) == 0 {
		return &models.FitScoreResult{
			FitScore:       100,
			Explanation:    "No specific tech stack defined for the project.",
			MatchingSkills: []string{},
			MissingSkills:  []string{},
		}, nil
	}

	if len(req.StaffSkills) == 0 {
		return &models.FitScoreResult{
			FitScore:       0,
			Explanation:    "Staff member has no skills listed.",
			MatchingSkills: []string{},
			MissingSkills:  req.ProjectTechStack,
		}, nil
	}

	p, err := prompt.Render(fitScoreTemplate, map[string]interface{}{
		"project_tech_stack": req.ProjectTechStack,
		"staff_skills":       req.StaffSkills,
	})
	if err != nil {
		return nil, err
	}

	var result models.FitScoreResult
	if err := s.gen.Generate(ctx, p, fitScoreContract, &result); err != nil {
		return nil, err
	}

	s.logger.Debug("Fit score calculated", map[string]interface{}{
		"fit_score":      result.FitScore,
		"matching_count": len(result.MatchingSkills),
		"missing_count":  len(result.MissingSkills),
	})
	return &result, nil
}
