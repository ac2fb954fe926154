package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annotController "claimku_backend/internals/features/claims/image_annotations/controller"
	middleware "claimku_backend/internals/middlewares/auth"
)

func ImageAnnotationRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := annotController.New(db, v)

	r := api.Group("/image-annotations")
	r.Get("/by-image", ctl.ByImage)

	// annotating is a reviewer activity
	r.Post("/save", middleware.AdminOnly(), ctl.Save)
	r.Patch("/:id", middleware.AdminOnly(), ctl.UpdateOne)
	r.Delete("/:id", middleware.AdminOnly(), ctl.DeleteOne)
}
