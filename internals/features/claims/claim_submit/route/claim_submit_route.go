package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submitController "claimku_backend/internals/features/claims/claim_submit/controller"
)

func ClaimSubmitRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := submitController.New(db, v)

	r := api.Group("/claim-submit")
	r.Post("/submit", ctl.Submit)     // atomic create: accident + claim + photos
	r.Put("/update/:id", ctl.Update)  // atomic resubmission (replace-all photos)
}
