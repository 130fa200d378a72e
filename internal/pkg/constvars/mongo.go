package constvars

const (
	MongoCollectionUsers                 = "users"
	MongoCollectionInProgressAssessments = "in_progress_assessments"
	MongoCollectionCompletedAssessments  = "completed_assessments"
	MongoCollectionAuditLogs             = "audit_logs"
	MongoCollectionSystemSettings        = "system_settings"
)
