package flows

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/pkg/models"
)

const resumeInfoTemplate = `You are an expert resume parsing AI. Your task is to extract structured information from the provided resume.
Carefully analyze the content and populate all the fields in the output schema.

Resume:
{{media url=document_data_uri}}

Extract the information and provide it in the requested JSON format.`

var resumeInfoContract = &schema.Contract{
	Name: "extract_resume_info",
	Fields: []schema.Field{
		{Name: "personal", Type: schema.Object, Description: "Personal information of the candidate.", Fields: []schema.Field{
			{Name: "name", Type: schema.String, Description: "The full name of the candidate."},
			{Name: "email", Type: schema.String, Description: "The email address of the candidate."},
			{Name: "phone", Type: schema.String, Description: "The phone number of the candidate."},
			{Name: "address", Type: schema.String, Description: "The full address of the candidate."},
		}},
		{Name: "skills", Type: schema.StringArray, Description: "A list of professional skills extracted from the resume."},
		{Name: "education", Type: schema.ObjectArray, Description: "The candidate's educational background.", Fields: []schema.Field{
			{Name: "degree", Type: schema.String, Description: "The degree obtained."},
			{Name: "university", Type: schema.String, Description: "The name of the university or institution."},
			{Name: "year", Type: schema.Integer, Description: "The year of graduation.", Optional: true},
		}},
		{Name: "experience", Type: schema.ObjectArray, Description: "The candidate's work experience.", Fields: []schema.Field{
			{Name: "position", Type: schema.String, Description: "The job title or position held."},
			{Name: "company", Type: schema.String, Description: "The name of the company."},
			{Name: "start_date", Type: schema.String, Description: "The start date of the employment (YYYY-MM-DD).", Optional: true},
			{Name: "end_date", Type: schema.String, Description: "The end date of the employment (YYYY-MM-DD), or omitted if current.", Optional: true},
			{Name: "summary", Type: schema.String, Description: "A brief summary of responsibilities and achievements.", Optional: true},
		}},
	},
}

// ExtractResumeInfo parses a full structured profile out of an uploaded
// resume: personal details, skills, education, and work history
func (s *Service) ExtractResumeInfo(ctx context.Context, req *models.ExtractDocumentRequest) (*models.ResumeInfoResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	p, err := prompt.Render(resumeInfoTemplate, map[string]interface{}{
		"document_data_uri": req.DocumentDataURI,
	})
	if err != nil {
		return nil, err
	}

	var result models.ResumeInfoResult
	if err := s.gen.Generate(ctx, p, resumeInfoContract, &result); err != nil {
		return nil, err
	}

	s.logger.Debug("Resume extraction completed", map[string]interface{}{
		"candidate":        result.Personal.Name,
		"skill_count":      len(result.Skills),
		"experience_count": len(result.Experience),
	})
	return &result, nil
}
