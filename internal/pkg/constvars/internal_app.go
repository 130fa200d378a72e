package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_USER_EMAIL_KEY   ContextKey = "user_email"
	CONTEXT_USER_ROLE_KEY    ContextKey = "user_role"
)

const (
	ResourceQuestionnaire = "questionnaire"
	ResourceAssessments   = "assessments"
	ResourceReports       = "reports"
	ResourceUsers         = "users"
	ResourceAdmin         = "admin"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	AssessmentIDLength = 16
)

const (
	ResponseUnknown = "unknown"
)
