package flows

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/pkg/models"
)

const projectBrdTemplate = `You are an expert project management assistant. Your task is to extract structured information from the provided Business Requirements Document (BRD).
Carefully analyze the content and populate all the fields in the output schema.

Infer the technologies, programming languages, frameworks, databases, and tools from the requirements.
Identify key dates for the project timeline.
Identify the roles and team composition mentioned in the document.

BRD Document:
{{media url=document_data_uri}}

Extract the information and provide it in the requested JSON format.`

var projectBrdContract = &schema.Contract{
	Name: "extract_project_brd",
	Fields: []schema.Field{
		{Name: "name", Type: schema.String, Description: "The name of the project."},
		{Name: "manager", Type: schema.String, Description: "The name of the project manager.", Optional: true},
		{Name: "owner", Type: schema.String, Description: "The name of the project owner or primary stakeholder.", Optional: true},
		{Name: "tech_stack", Type: schema.Object, Description: "The technical stack required for the project.", Fields: []schema.Field{
			{Name: "languages", Type: schema.StringArray, Description: "A list of programming languages mentioned."},
			{Name: "frameworks", Type: schema.StringArray, Description: "A list of frameworks or libraries required."},
			{Name: "databases", Type: schema.StringArray, Description: "A list of databases mentioned."},
			{Name: "cloud_provider", Type: schema.String, Description: "The cloud provider (e.g., Firebase, AWS, Azure) if mentioned.", Optional: true},
			{Name: "integrations", Type: schema.StringArray, Description: "A list of third-party integrations required."},
			{Name: "dev_ops", Type: schema.StringArray, Description: "A list of DevOps tools or CI/CD technologies mentioned."},
		}},
		{Name: "timeline", Type: schema.Object, Description: "Project timeline and estimations.", Fields: []schema.Field{
			{Name: "start_date", Type: schema.String, Description: "The proposed start date of the project (YYYY-MM-DD).", Optional: true},
			{Name: "end_date", Type: schema.String, Description: "The proposed end date or deadline for the project (YYYY-MM-DD).", Optional: true},
			{Name: "estimated_hours", Type: schema.Number, Description: "The estimated effort in person-hours if mentioned.", Optional: true},
		}},
		{Name: "resources", Type: schema.ObjectArray, Description: "A list of human resources or roles identified as necessary for the project.", Fields: []schema.Field{
			{Name: "role", Type: schema.String, Description: "The role required for the project (e.g., 'Frontend Developer', 'UX Designer')."},
			{Name: "count", Type: schema.Integer, Description: "The number of people required for this role.", Optional: true},
		}},
	},
}

// ExtractProjectBrd turns an uploaded Business Requirements Document into a
// structured project proposal: tech stack, timeline, and staffing needs
func (s *Service) ExtractProjectBrd(ctx context.Context, req *models.ExtractDocumentRequest) (*models.ProjectBrdResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	p, err := prompt.Render(projectBrdTemplate, map[string]interface{}{
		"document_data_uri": req.DocumentDataURI,
	})
	if err != nil {
		return nil, err
	}

	var result models.ProjectBrdResult
	if err := s.gen.Generate(ctx, p, projectBrdContract, &result); err != nil {
		return nil, err
	}

	s.logger.Debug("BRD extraction completed", map[string]interface{}{
		"project":        result.Name,
		"resource_roles": len(result.Resources),
	})
	return &result, nil
}
