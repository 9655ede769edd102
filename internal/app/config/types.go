package config

type (
	InternalConfig struct {
		App        App
		Scheduling Scheduling
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	// Scheduling positions the derived companion activities and sizes the
	// per-user cache and lock.
	Scheduling struct {
		AfterWakeOffsetInMinute   int
		MorningDurationInMinute   int
		BeforeSleepOffsetInMinute int
		EveningDurationInMinute   int
		CacheTTLInSecond          int
		LockExpirationInSecond    int
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
)
