package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientFormUnavailable               = "The intake form could not be loaded, please try again"
	ErrClientSubmitFailed                  = "Your answers could not be submitted, please try again; your entries have been kept"
	ErrClientIntakeNotFound                = "Intake form not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientMissingRequiredFields         = "Please complete the following required fields"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON body"
	ErrDevCannotMarshalJSON       = "cannot marshal value to JSON"
	ErrDevCreateHTTPRequest       = "cannot create HTTP request"
	ErrDevSendHTTPRequest         = "cannot send HTTP request"
	ErrDevDecodeResponse          = "cannot decode response body"
	ErrDevHealthieQuery           = "healthie GraphQL query failed"
	ErrDevHealthieSubmit          = "healthie form submission rejected"
	ErrDevMongoDBInsertDocument   = "mongodb: cannot insert document"
	ErrDevMongoDBFindDocument     = "mongodb: cannot find document"
	ErrDevMongoDBDeleteDocument   = "mongodb: cannot delete document"
	ErrDevRedisSet                = "redis: cannot set key"
	ErrDevRedisGet                = "redis: cannot get key"
	ErrDevRedisDelete             = "redis: cannot delete key"
	ErrDevMinioCreateObject       = "minio: cannot create object in bucket %s"
	ErrDevQueuePublish            = "rabbitmq: cannot publish message"
	ErrDevAdminTokenInvalid       = "admin token invalid or expired"
	ErrDevAdminAPIKeyMismatch     = "admin api key does not match configured hash"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevSignatureImageMalformed = "signature image data is not valid base64 PNG"

	ResponseUnknown = "unknown"
)
