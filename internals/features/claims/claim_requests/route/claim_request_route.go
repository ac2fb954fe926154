package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimController "claimku_backend/internals/features/claims/claim_requests/controller"
	middleware "claimku_backend/internals/middlewares/auth"
)

// ClaimRequestRoutes wires the lifecycle endpoints. Paths are the
// frozen client contract - the admin transition lives on
// PATCH /claim-requests/:id with a role guard, not under /a.
func ClaimRequestRoutes(api fiber.Router, admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := claimController.New(db, v)

	r := api.Group("/claim-requests")
	r.Post("/", ctl.Create)                     // create pending claim shell
	r.Patch("/:id/correction", ctl.Correction)  // customer marks incomplete + timeline step
	r.Get("/list", ctl.List)                    // nested list (images + steps)
	r.Get("/detail", ctl.Detail)                // full nested detail incl. annotations

	r.Patch("/:id", middleware.AdminOnly(), ctl.PatchStatus)         // admin transition
	r.Put("/:id/accident", middleware.AdminOnly(), ctl.RebindAccident) // rebind accident_detail_id

	// back-office xlsx export
	admin.Get("/claim-requests/export", ctl.Export)
}
