package routers

import (
	"fmt"

	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// attachDoctorRoutes covers the public, patient-facing doctor surface:
// directory, profile, booking calendar and the live profile event stream.
func attachDoctorRoutes(router chi.Router, m *middlewares.Middlewares, doctorController *controllers.DoctorController, bookingController *controllers.BookingController) {
	doctorIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamDoctorID)

	router.Get("/", doctorController.ListDoctors)
	router.Get(doctorIDPattern, doctorController.GetDoctor)
	router.Get(doctorIDPattern+"/calendar", bookingController.Calendar)
	router.Get(doctorIDPattern+"/slots", bookingController.Slots)
	router.Get(doctorIDPattern+"/events", doctorController.Events)
	router.With(m.Authenticate, m.RequireRoles(constvars.RolePatient)).
		Post(doctorIDPattern+"/appointments", bookingController.Book)
}

// attachDoctorSelfRoutes covers the doctor-portal surface: onboarding,
// profile and availability management, and the doctor dashboard.
func attachDoctorSelfRoutes(router chi.Router, m *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	doctorIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamDoctorID)

	router.With(m.Authenticate, m.RequireRoles(constvars.RoleDoctor)).
		Post("/onboarding", doctorController.Onboard)
	router.With(m.Authenticate, m.RequireRoles(constvars.RoleDoctor)).
		Get("/dashboard", doctorController.Dashboard)

	router.With(m.Authenticate, m.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).
		Put(doctorIDPattern, doctorController.UpdateProfile)
	router.With(m.Authenticate, m.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).
		Put(doctorIDPattern+"/availability", doctorController.UpdateAvailability)
	router.With(m.Authenticate, m.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).
		Post(doctorIDPattern+"/profile-image", doctorController.UploadProfileImage)
}
