package routers

import (
	"fmt"
	"time"

	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, m *middlewares.Middlewares, authController *controllers.AuthController, adminController *controllers.AdminController) {
	loginLimiter := middlewares.NewRateLimiter(
		m.InternalConfig.App.LoginRatePerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.LoginBlockInMinutes)*time.Minute,
	)

	router.With(loginLimiter.Limit).Post("/login", authController.LoginAdmin)

	router.Group(func(r chi.Router) {
		r.Use(m.Authenticate, m.RequireRoles(constvars.RoleAdmin))

		r.Get("/dashboard", adminController.Dashboard)

		r.Get("/doctors", adminController.ListDoctors)
		r.Delete(fmt.Sprintf("/doctors/{%s}", constvars.URLParamDoctorID), adminController.DeleteDoctor)

		r.Get("/patients", adminController.ListPatients)
		r.Delete(fmt.Sprintf("/patients/{%s}", constvars.URLParamPatientID), adminController.DeletePatient)

		r.Get("/appointments", adminController.ListAppointments)
		r.Delete(fmt.Sprintf("/appointments/{%s}", constvars.URLParamAppointmentID), adminController.DeleteAppointment)
	})
}
