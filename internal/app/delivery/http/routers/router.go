package routers

import (
	"fmt"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	bookingController *controllers.BookingController,
	patientController *controllers.PatientController,
	adminController *controllers.AdminController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/specialties", func(r chi.Router) {
				r.Get("/", doctorController.ListSpecialties)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController, bookingController)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorSelfRoutes(r, middlewares, doctorController)
			})

			attachPatientRoutes(r, middlewares, patientController, bookingController)

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, authController, adminController)
			})
		})
	})
}
