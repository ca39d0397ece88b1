package config

type InternalConfig struct {
	App     App
	Patient AppPatient
	Report  AppReport
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	APIKey                     string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
}

type AppPatient struct {
	EditLockTTLInSeconds      int
	RabbitMQEventQueue        string
	MinioImageBucketName      string
	MinioPublicBaseUrl        string
	ImageMaxUploadSizeInMB    int64
	ImportRateLimitPerSeconds int
}

type AppReport struct {
	MinioBucketName                          string
	MinioPreSignedUrlObjectExpiryTimeInHours int
	RenderTimeoutInSeconds                   int
}
