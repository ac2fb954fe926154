package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	policyController "claimku_backend/internals/features/users/policies/controller"
)

func PolicyRoutes(api fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctl := policyController.New(db)

	api.Get("/policies", ctl.ListMine)
	admin.Get("/policies/by-user", ctl.ListByUser)
}
