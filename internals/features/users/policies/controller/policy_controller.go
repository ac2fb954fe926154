// file: internals/features/users/policies/controller/policy_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "claimku_backend/internals/features/users/policies/model"
	helper "claimku_backend/internals/helpers"
	helperAuth "claimku_backend/internals/helpers/auth"
)

type PolicyController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *PolicyController {
	return &PolicyController{DB: db}
}

// ListMine returns the caller's active policies - the car picker on
// the claim form reads from this.
func (ctl *PolicyController) ListMine(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	var policies []m.InsurancePolicy
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND is_active = true", p.UserID).
		Order("created_at DESC").
		Find(&policies).Error; err != nil {
		log.Printf("[Policy.ListMine] db error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, fiber.Map{"data": policies})
}

// ListByUser is the admin view (?user_id=).
func (ctl *PolicyController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Query("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id is not a valid uuid")
	}

	var policies []m.InsurancePolicy
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&policies).Error; err != nil {
		log.Printf("[Policy.ListByUser] db error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, fiber.Map{"data": policies})
}
