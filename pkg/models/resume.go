package models

// SkillsResult is the output of the skills extraction flow. An empty list is
// a structurally valid result; treating it as a failure is a caller policy.
type SkillsResult struct {
	Skills []string `json:"skills"`
}

// PersonalInfo is the personal block of a parsed resume
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// EducationEntry is one item of a candidate's educational background
type EducationEntry struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Year       *int   `json:"year,omitempty"`
}

// ExperienceEntry is one item of a candidate's work history. Dates are ISO
// calendar dates (YYYY-MM-DD); normalization is the model's responsibility.
type ExperienceEntry struct {
	Position  string `json:"position"`
	Company   string `json:"company"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Summary   string `json:"summary,omitempty"`
}

// ResumeInfoResult is the output of the structured resume extraction flow
type ResumeInfoResult struct {
	Personal   PersonalInfo      `json:"personal"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience" validate:"omitempty,dive"`
}
