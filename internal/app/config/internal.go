package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                          string
	Port                         string
	Version                      string
	Address                      string
	Timezone                     string
	EndpointPrefix               string
	MailerEmailSender            string
	RabbitMQMailerQueue          string
	MaxRequests                  int
	ShutdownTimeout              int
	MaxTimeRequestsPerSeconds    int
	RequestBodyLimitInMegabyte   int
	EditBufferExpiryTimeInHours  int
	ReportCacheExpiryTimeInHours int
	MailerRatePerSecond          int
	CleanupMaxRetries            int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
