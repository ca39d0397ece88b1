package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
		Chrome   Chrome
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
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
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Chrome struct {
		// ExecPath is optional; chromedp looks up a local Chrome when empty.
		ExecPath  string
		NoSandbox bool
	}
)
