package config

type InternalConfig struct {
	App     App
	JWT     JWT
	Booking Booking
	Storage Storage
	Events  Events
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
	// Login brute-force limiter knobs
	LoginRatePerMinute  int
	LoginBlockInMinutes int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Booking struct {
	SessionExpiredTimeInHours int
}

type Storage struct {
	BucketName                      string
	ProfilePictureMaxUploadSizeInMB int
}

type Events struct {
	AppointmentQueue string
}
