package routers

import (
	"fmt"

	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, m *middlewares.Middlewares, patientController *controllers.PatientController, bookingController *controllers.BookingController) {
	appointmentIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)

	router.With(m.Authenticate, m.RequireRoles(constvars.RolePatient)).
		Get("/dashboard", patientController.Dashboard)

	// Cancellation is open to any authenticated principal; the usecase
	// checks that the caller owns or administers the appointment.
	router.Route("/appointments", func(r chi.Router) {
		r.With(m.Authenticate).Delete(appointmentIDPattern, bookingController.Cancel)
	})
}
