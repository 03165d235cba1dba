package models

// FitScoreResult is the output of the project fit score flow
type FitScoreResult struct {
	FitScore       float64  `json:"fit_score" validate:"gte=0,lte=100"`
	Explanation    string   `json:"explanation"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

// LeaveAssessmentResult is the output of the leave assessment flow
type LeaveAssessmentResult struct {
	IsEligible        bool   `json:"is_eligible"`
	EligibilityReason string `json:"eligibility_reason"`
	ProjectImpact     string `json:"project_impact"`
}

// ChatLink is a fixed-navigation call to action returned when the user's
// query implies a known platform action
type ChatLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// ChatResult is the output of the chatbot flow
type ChatResult struct {
	Response string    `json:"response"`
	Link     *ChatLink `json:"link,omitempty"`
}
