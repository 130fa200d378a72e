package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingVersionKey       = "version"
	LoggingOperationKey     = "operation"
	LoggingAssessmentIDKey  = "assessment_id"
	LoggingUserEmailKey     = "user_email"
	LoggingResponseCountKey = "response_count"
	LoggingQueueNameKey     = "queue_name"
	LoggingReceiverEmailKey = "receiver_email"
)
