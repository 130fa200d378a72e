package responses

import "compliance-service/internal/app/models"

// CompletedAssessmentResult is returned when an in-progress assessment is
// finalized. CleanupPending is set when the completed record was written
// but the in-progress leftovers could not be removed yet.
type CompletedAssessmentResult struct {
	Assessment     *models.CompletedAssessment `json:"assessment"`
	Report         *ComplianceReport           `json:"report"`
	CleanupPending bool                        `json:"cleanup_pending,omitempty"`
}
