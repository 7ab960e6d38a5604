package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/delivery/http/routers"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/drivers/logger"
	"carebook-service/internal/app/drivers/messaging"
	"carebook-service/internal/app/drivers/storage"
	"carebook-service/internal/app/services/core/admins"
	"carebook-service/internal/app/services/core/appointments"
	"carebook-service/internal/app/services/core/auth"
	"carebook-service/internal/app/services/core/doctors"
	"carebook-service/internal/app/services/core/patients"
	"carebook-service/internal/app/services/core/users"
	"carebook-service/internal/app/services/shared/events"
	sharedredis "carebook-service/internal/app/services/shared/redis"
	"carebook-service/internal/app/services/shared/session"
	sharedstorage "carebook-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, minioClient, accessLogger)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client, accessLogger *logrus.Logger) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)

	eventPublisher, err := events.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Events.AppointmentQueue,
	)
	if err != nil {
		log.Fatalf("Error setting up event publisher: %v", err)
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	adminMongoRepository := admins.NewAdminMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		adminMongoRepository,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingUsecase := appointments.NewBookingUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientUsecase := patients.NewPatientUsecase(appointmentMongoRepository, bootstrap.Logger)
	adminUsecase := admins.NewAdminUsecase(
		userMongoRepository,
		doctorMongoRepository,
		patientMongoRepository,
		appointmentMongoRepository,
		bootstrap.Logger,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		AuthUsecase:    authUsecase,
		SessionService: sessionService,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		accessLogger,
		appMiddlewares,
		authController,
		doctorController,
		bookingController,
		patientController,
		adminController,
	)
}
