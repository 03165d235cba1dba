package flows

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/pkg/models"
)

const skillsTemplate = `You are a resume parsing expert. You will extract the skills from the resume provided.

Resume:
{{media url=document_data_uri}}

Return a list of skills extracted from the resume.`

var skillsContract = &schema.Contract{
	Name: "extract_skills",
	Fields: []schema.Field{
		{Name: "skills", Type: schema.StringArray, Description: "The skills extracted from the resume."},
	},
}

// ExtractSkills pulls the list of professional skills out of an uploaded
// resume. An empty list is returned as-is; deciding that an empty list is a
// failure belongs to the caller, not this flow.
func (s *Service) ExtractSkills(ctx context.Context, req *models.ExtractDocumentRequest) (*models.SkillsResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	p, err := prompt.Render(skillsTemplate, map[string]interface{}{
		"document_data_uri": req.DocumentDataURI,
	})
	if err != nil {
		return nil, err
	}

	var result models.SkillsResult
	if err := s.gen.Generate(ctx, p, skillsContract, &result); err != nil {
		return nil, err
	}

	s.logger.Debug("Skills extraction completed", map[string]interface{}{
		"skill_count": len(result.Skills),
	})
	return &result, nil
}
