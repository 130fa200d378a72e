package models

import (
	"fmt"
	"math/rand"
	"time"
)

type AuditLog struct {
	ID               string                 `json:"id" bson:"_id"`
	Timestamp        string                 `json:"timestamp" bson:"timestamp"`
	Action           string                 `json:"action" bson:"action"`
	PerformedBy      string                 `json:"performedBy" bson:"performedBy"`
	AffectedResource string                 `json:"affectedResource" bson:"affectedResource"`
	ResourceID       string                 `json:"resourceId" bson:"resourceId"`
	Details          map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
}

// Audit log actions recorded by administrative operations.
const (
	AuditActionUserApproved     = "USER_APPROVED"
	AuditActionUserRejected     = "USER_REJECTED"
	AuditActionUserSuspended    = "USER_SUSPENDED"
	AuditActionUserReactivated  = "USER_REACTIVATED"
	AuditActionUserCreated      = "USER_CREATED"
	AuditActionUserDeleted      = "USER_DELETED"
	AuditActionUserRoleUpdated  = "USER_ROLE_UPDATED"
	AuditActionSettingsUpdated  = "SETTINGS_UPDATED"
	AuditActionSectionDeleted   = "QUESTIONNAIRE_SECTION_DELETED"
)

// NewAuditLog stamps an entry with a unique id and the current time.
func NewAuditLog(action, performedBy, affectedResource, resourceID string, details map[string]interface{}) *AuditLog {
	now := time.Now().UTC()
	return &AuditLog{
		ID:               fmt.Sprintf("audit-%d-%06d", now.UnixMilli(), rand.Intn(1000000)),
		Timestamp:        now.Format(time.RFC3339),
		Action:           action,
		PerformedBy:      performedBy,
		AffectedResource: affectedResource,
		ResourceID:       resourceID,
		Details:          details,
	}
}
