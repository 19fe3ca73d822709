package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingErrorTypeKey      = "error_type"
	LoggingPatientIDKey      = "patient_id"
	LoggingFormIDKey         = "form_id"
	LoggingStepKey           = "step"
	LoggingSubmissionIDKey   = "submission_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingDurationKey       = "duration"
)
