package config

type InternalConfig struct {
	App App
	HMS AppHMS
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

// AppHMS describes the external hospital management backend.
type AppHMS struct {
	// BaseUrl is the REST root, e.g. http://localhost:5000/api, without trailing slash
	BaseUrl string
	// TimeoutInSeconds of zero leaves the transport default in place
	TimeoutInSeconds            int
	ReferenceCacheTTLInSeconds  int
	MutationEventsQueue         string
	ReferenceWarmupTimeoutInSec int
}

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Redis struct {
		Enabled  bool
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
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
)
