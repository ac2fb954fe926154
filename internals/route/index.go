// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"claimku_backend/internals/configs"
	authController "claimku_backend/internals/features/users/auth/controller"
	middleware "claimku_backend/internals/middlewares/auth"
	routeDetails "claimku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	authMW := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authController.BlacklistChecker(db),
		AllowCookieFallback: true,
	})

	// authenticated user surface (same /api prefix, JWT required)
	private := api.Group("", authMW)

	// admin back office
	admin := api.Group("/a", authMW, middleware.AdminOnly())

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, private, admin, db, v)

	log.Println("[INFO] Setting up ClaimRoutes...")
	routeDetails.ClaimRoutes(private, admin, db, v)
}
