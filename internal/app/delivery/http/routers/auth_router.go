package routers

import (
	"time"

	"carebook-service/internal/app/delivery/http/controllers"
	"carebook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, authController *controllers.AuthController) {
	// Credential endpoints get a stricter per-IP limiter with a block
	// window on top of the global request cap.
	loginLimiter := middlewares.NewRateLimiter(
		m.InternalConfig.App.LoginRatePerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.LoginBlockInMinutes)*time.Minute,
	)

	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(m.Authenticate).Post("/logout", authController.Logout)
	router.With(m.Authenticate).Get("/me", authController.CurrentUser)
}
