package constvars

const (
	GetCurrentQuestionnaireSuccessMessage = "successfully fetched current questionnaire"
	GetVersionsSuccessMessage             = "successfully fetched questionnaire versions"
	CreateVersionSuccessMessage           = "successfully created questionnaire version"
	ActivateVersionSuccessMessage         = "successfully activated questionnaire version"
	SaveVersionSuccessMessage             = "successfully saved questionnaire version"
	DeleteVersionSuccessMessage           = "successfully deleted questionnaire version"
	AddSectionSuccessMessage              = "successfully added questionnaire section"
	DeleteSectionSuccessMessage           = "successfully deleted questionnaire section"

	GetAssessmentsSuccessMessage     = "successfully fetched assessments"
	CreateAssessmentSuccessMessage   = "successfully created assessment"
	UpdateAssessmentSuccessMessage   = "successfully saved assessment progress"
	CompleteAssessmentSuccessMessage = "successfully completed assessment"
	DeleteAssessmentSuccessMessage   = "successfully deleted assessment"

	GenerateReportSuccessMessage = "successfully generated assessment report"

	AdminOperationSuccessMessage = "successfully executed admin operation"
)
