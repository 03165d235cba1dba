package models

// LeaveBalance tracks entitlement and usage for one leave type
type LeaveBalance struct {
	Entitled int `json:"entitled"`
	Taken    int `json:"taken"`
}

// Remaining returns the unused balance
func (b LeaveBalance) Remaining() float64 {
	return float64(b.Entitled - b.Taken)
}

// LeaveBalances holds the per-type leave balances of a staff member
type LeaveBalances struct {
	Sick     LeaveBalance `json:"sick"`
	Vacation LeaveBalance `json:"vacation"`
	Personal LeaveBalance `json:"personal"`
}

// ForType returns the balance for a leave type; ok is false for an unknown type
func (l LeaveBalances) ForType(leaveType string) (LeaveBalance, bool) {
	switch leaveType {
	case "sick":
		return l.Sick, true
	case "vacation":
		return l.Vacation, true
	case "personal":
		return l.Personal, true
	}
	return LeaveBalance{}, false
}

// StaffMember is a staff record as exposed by the record store
type StaffMember struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	JobTitle   string        `json:"job_title"`
	TenantID   string        `json:"tenant_id"`
	TenantName string        `json:"tenant_name"`
	Status     string        `json:"status"`
	Skills     []string      `json:"skills"`
	Leave      LeaveBalances `json:"leave"`
}

// TeamMember is an assignment of a staff member to a project
type TeamMember struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Allocation int    `json:"allocation"`
}

// Project is a project record as exposed by the record store
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Owner       string       `json:"owner"`
	Manager     string       `json:"manager"`
	TenantID    string       `json:"tenant_id"`
	TenantName  string       `json:"tenant_name"`
	TeamMembers []TeamMember `json:"team_members"`
	TechStack   TechStack    `json:"tech_stack"`
}

// Tenant is a tenant record as exposed by the record store
type Tenant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ProjectAssignment is a staff member's involvement in one project, as fed to
// the leave assessment prompt
type ProjectAssignment struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Allocation int    `json:"allocation"`
}
