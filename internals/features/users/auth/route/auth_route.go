package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "claimku_backend/internals/features/users/auth/controller"
	"claimku_backend/internals/middlewares"
)

// AuthRoutes: login/register stay public (with a stricter limiter);
// me/logout ride the authenticated group.
func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := authController.New(db, v)

	pub := public.Group("/auth")
	pub.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	pub.Post("/register", ctl.Register)

	priv := private.Group("/auth")
	priv.Get("/me", ctl.Me)
	priv.Post("/logout", ctl.Logout)
}
