package constvars

// Client-facing messages. These are the only strings that reach the UI.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"

	ErrClientVersionNotFound          = "questionnaire version not found"
	ErrClientCannotDeleteLastVersion  = "cannot delete the only remaining questionnaire version"
	ErrClientSectionNotFound          = "questionnaire section not found"
	ErrClientAssessmentNotFound       = "assessment not found"
	ErrClientAssessmentCleanupPending = "assessment completed but cleanup is still pending"
	ErrClientUserNotFound             = "user not found"
	ErrClientInvalidAnswerData        = "assessment answer data is invalid"
)

// Developer-facing messages, logged but never shown in production responses.
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id not found in request context"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevAuthTokenMissing         = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken        = "failed to generate session token"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevEmailAlreadyExists       = "email already exists"

	ErrDevDBFailedToFindDocument     = "failed to find document on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"

	ErrDevMinioFailedToCreateObject   = "failed to create object on bucket %s"
	ErrDevMinioFailedToGetObject      = "failed to get object %s from bucket"
	ErrDevMinioFailedToDeleteObject   = "failed to delete object %s from bucket"
	ErrDevMinioFailedToListObjects    = "failed to list objects under prefix %s"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
	ErrDevSMTPSendEmail   = "failed to send email via SMTP client hostname %s"

	ErrDevVersionNotFound           = "questionnaire version %s not found in storage"
	ErrDevVersionParseFailed        = "failed to parse questionnaire version blob %s"
	ErrDevCannotDeleteLastVersion   = "refusing to delete the last remaining questionnaire version"
	ErrDevNoAlternateVersion        = "no alternate version found to activate before deletion"
	ErrDevSectionNotFound           = "section %s not found in current questionnaire version"
	ErrDevReportDataNil             = "assessment data is nil"
	ErrDevReportDataNotObject       = "assessment data is not a JSON object"
	ErrDevAssessmentNotFound        = "assessment %s not found"
	ErrDevAssessmentCleanupPending  = "completed assessment created but in-progress cleanup failed"
	ErrDevUnknownAdminOperation     = "unknown admin operation %s, falling back to listUsers"
)
