package config

import (
	"carebook-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carebook"),
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
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			Version:             utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginRatePerMinute:  utils.GetEnvInt("APP_LOGIN_RATE_PER_MINUTE", 10),
			LoginBlockInMinutes: utils.GetEnvInt("APP_LOGIN_BLOCK_IN_MINUTES", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Booking: Booking{
			SessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 1),
		},
		Storage: Storage{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "carebook-profile-images"),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		Events: Events{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "carebook.appointments"),
		},
	}
}
