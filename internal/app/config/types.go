package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App      App
		Healthie Healthie
		JWT      JWT
		Admin    Admin
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		TestMode                   bool
		ProgressTTLInHours         int
		RabbitMQIntakeQueue        string
		SignatureMaxUploadSizeInMB int64
	}

	Healthie struct {
		BaseUrl                 string
		APIKey                  string
		FormID                  string
		RequestTimeoutInSeconds int
		RateLimitPerSecond      int
		RateLimitBurst          int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Admin struct {
		APIKeyHash string
	}
)
