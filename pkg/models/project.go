package models

// TechStack groups the technology categories of a project. The model infers
// the category of each technology from unstructured requirement prose.
type TechStack struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	Databases     []string `json:"databases"`
	CloudProvider string   `json:"cloud_provider,omitempty"`
	Integrations  []string `json:"integrations"`
	DevOps        []string `json:"dev_ops"`
}

// ProjectTimeline holds the proposed schedule and effort estimate
type ProjectTimeline struct {
	StartDate      string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// ResourceRole is a human-resource requirement identified in a BRD
type ResourceRole struct {
	Role  string `json:"role"`
	Count *int   `json:"count,omitempty"`
}

// ProjectBrdResult is the output of the BRD extraction flow
type ProjectBrdResult struct {
	Name      string          `json:"name"`
	Manager   string          `json:"manager,omitempty"`
	Owner     string          `json:"owner,omitempty"`
	TechStack TechStack       `json:"tech_stack"`
	Timeline  ProjectTimeline `json:"timeline"`
	Resources []ResourceRole  `json:"resources"`
}
