package constvars

// Redis key formats.
const (
	RedisKeyIntakeProgress = "intake:progress:%s"
)

// RabbitMQ queue names.
const (
	QueueIntakeSubmitted = "intake_submitted_queue"
)

// Mongo collections.
const (
	MongoCollectionIntakes = "intakes"
)

// Intake document lifecycle.
const (
	IntakeStatusDraft     = "draft"
	IntakeStatusCompleted = "completed"

	IntakeSchemaVersion = "1.0"
)

// AuthorizationSource value the Healthie API expects alongside the API key.
const (
	HealthieAuthorizationSourceAPI = "API"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_ADMIN_SUB_KEY  ContextKey = "admin_sub"
)

const (
	REQUEST_ID_PREFIX = "INTK_SVC_"
)
