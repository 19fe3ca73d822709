package config

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "intake"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "intake-signatures"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			TestMode:                   utils.GetEnvBool("APP_TEST_MODE", false),
			ProgressTTLInHours:         utils.GetEnvInt("APP_PROGRESS_TTL_IN_HOURS", 72),
			RabbitMQIntakeQueue:        utils.GetEnvString("APP_RABBITMQ_INTAKE_QUEUE", constvars.QueueIntakeSubmitted),
			SignatureMaxUploadSizeInMB: int64(utils.GetEnvInt("APP_SIGNATURE_UPLOAD_MAX_SIZE_IN_MB", 2)),
		},
		Healthie: Healthie{
			BaseUrl:                 utils.GetEnvString("HEALTHIE_BASE_URL", "https://api.gethealthie.com/graphql"),
			APIKey:                  utils.GetEnvString("HEALTHIE_API_KEY", ""),
			FormID:                  utils.GetEnvString("HEALTHIE_FORM_ID", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("HEALTHIE_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RateLimitPerSecond:      utils.GetEnvInt("HEALTHIE_RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:          utils.GetEnvInt("HEALTHIE_RATE_LIMIT_BURST", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Admin: Admin{
			APIKeyHash: utils.GetEnvString("ADMIN_API_KEY_HASH", ""),
		},
	}
}
