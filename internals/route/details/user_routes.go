package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "claimku_backend/internals/features/users/auth/route"
	policyRoute "claimku_backend/internals/features/users/policies/route"
)

func UserRoutes(public fiber.Router, private fiber.Router, admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	authRoute.AuthRoutes(public, private, db, v)
	policyRoute.PolicyRoutes(private, admin, db)
}
