package constvars

// Object storage layout for the versioned questionnaire and assessment blobs.
const (
	QuestionnaireCurrentPath  = "questionnaire/current.json"
	QuestionnaireVersionsPath = "questionnaire/versions/"

	// Version blobs are stored as v<major>_<minor>.json, dot replaced with
	// underscore in the object name.
	QuestionnaireVersionFileFormat = "questionnaire/versions/v%s.json"

	AssessmentInProgressPathFormat = "assessments/%s/in-progress/%s.json"
	AssessmentCompletedPathFormat  = "assessments/%s/completed/%s.json"
)

const (
	QuestionnaireInitialVersion = "1.0"
	QuestionnaireVersionStep    = 0.1

	QuestionnaireAutoSavedChangeNotes = "Auto-saved version"
	QuestionnaireInitialChangeNotes   = "Initial version from default questionnaire"

	QuestionnaireSectionTitleFormat = "Section %d: %s"

	QuestionnaireEditPageIDFormat = "page-%d"
)

const (
	QuestionnaireEditBufferKey = "questionnaire:edit-buffer"

	ReportAnswerDataCacheKeyFormat = "report:%s:%s:answer-data"
)

// Answer key delimiters. Control keys are "<group>@<question>@<shortId>",
// onboarding keys are "<page>^<question>^<shortId>", control follow-ups are
// "<text>**<shortId>_followup".
const (
	AnswerKeyControlDelimiter    = "@"
	AnswerKeyOnboardingDelimiter = "^"
	AnswerKeyFollowUpDelimiter   = "**"
	AnswerKeyFollowUpSuffix      = "_followup"
	AnswerKeyOnboardingMarker    = "onboarding"
)

const (
	SurveyElementTypeText       = "text"
	SurveyElementTypeComment    = "comment"
	SurveyElementTypeRadioGroup = "radiogroup"
	SurveyElementTypeCheckbox   = "checkbox"
	SurveyElementTypeDropdown   = "dropdown"
)
