package models

// ExtractDocumentRequest is the shared input for the extraction flows. The
// document is a self-describing binary reference: a data URI carrying a MIME
// type and a base64-encoded payload.
type ExtractDocumentRequest struct {
	DocumentDataURI string `json:"document_data_uri" validate:"required,datauri"`
}

// FitScoreRequest is the input for the project fit score flow
type FitScoreRequest struct {
	ProjectTechStack []string `json:"project_tech_stack"`
	StaffSkills      []string `json:"staff_skills"`
}

// StaffFitScoreRequest is the REST payload for fit scoring; the staff
// member's skills are resolved from the record store by the handler
type StaffFitScoreRequest struct {
	StaffID          string   `json:"staff_id" validate:"required"`
	ProjectTechStack []string `json:"project_tech_stack"`
}

// LeaveAssessmentRequest is the input for the leave assessment flow
type LeaveAssessmentRequest struct {
	StaffID   string  `json:"staff_id" validate:"required"`
	LeaveType string  `json:"leave_type" validate:"required,oneof=sick vacation personal"`
	LeaveDays float64 `json:"leave_days" validate:"required,gt=0"`
}

// LeaveAssessmentDateRequest is the REST payload for leave assessment; the
// handler derives the day count from the date range
type LeaveAssessmentDateRequest struct {
	StaffID   string `json:"staff_id" validate:"required"`
	LeaveType string `json:"leave_type" validate:"required,oneof=sick vacation personal"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ChatTurn is a single message in the chatbot conversation history
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user model"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the input for the role-scoped chatbot flow
type ChatRequest struct {
	Query    string     `json:"query" validate:"required"`
	UserID   string     `json:"user_id" validate:"required"`
	UserRole string     `json:"user_role" validate:"required,oneof=admin staff"`
	History  []ChatTurn `json:"history,omitempty" validate:"omitempty,dive"`
}
