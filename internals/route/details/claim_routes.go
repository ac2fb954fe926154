package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimRequestRoute "claimku_backend/internals/features/claims/claim_requests/route"
	claimSubmitRoute "claimku_backend/internals/features/claims/claim_submit/route"
	annotationRoute "claimku_backend/internals/features/claims/image_annotations/route"
)

func ClaimRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	claimRequestRoute.ClaimRequestRoutes(private, admin, db, v)
	claimSubmitRoute.ClaimSubmitRoutes(private, db, v)
	annotationRoute.ImageAnnotationRoutes(private, db, v)
}
