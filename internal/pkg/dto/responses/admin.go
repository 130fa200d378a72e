package responses

import "compliance-service/internal/app/models"

type UserStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	Suspended int `json:"suspended"`
}

type AssessmentStats struct {
	Total        int `json:"total"`
	InProgress   int `json:"inProgress"`
	Completed    int `json:"completed"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"nonCompliant"`
}

// AdminStats is the dashboard aggregate. ComplianceRate is the percentage
// of completed assessments that are compliant, rounded down.
type AdminStats struct {
	Users          UserStats         `json:"users"`
	Assessments    AssessmentStats   `json:"assessments"`
	ComplianceRate int               `json:"complianceRate"`
	RecentActivity []models.AuditLog `json:"recentActivity"`
}

type UserList struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

type AuditLogList struct {
	Entries []models.AuditLog `json:"entries"`
	Total   int               `json:"total"`
}

// OperationResult is the plain success/message envelope some admin
// operations return.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
