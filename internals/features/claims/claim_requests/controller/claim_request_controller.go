// file: internals/features/claims/claim_requests/controller/claim_request_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"claimku_backend/internals/constants"
	d "claimku_backend/internals/features/claims/claim_requests/dto"
	m "claimku_backend/internals/features/claims/claim_requests/model"
	helper "claimku_backend/internals/helpers"
	helperAuth "claimku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClaimRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClaimRequestController {
	return &ClaimRequestController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid id")
	}
	return id, nil
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return fiber.StatusBadRequest, "Referenced row does not exist (FK violation)."
		case "23505":
			return fiber.StatusConflict, "Duplicate row (unique violation)."
		}
	}
	return fiber.StatusInternalServerError, "Database error"
}

func writePGError(c *fiber.Ctx, op string, err error) error {
	code, msg := mapPGError(err)
	// original error stays server-side only
	log.Printf("[ClaimRequest.%s] db error: %v", op, err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Create - pending claim shell (no accident yet)
   ========================= */

func (ctl *ClaimRequestController) Create(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req d.CreateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID := p.UserID
	claim := m.ClaimRequest{
		UserID:        &userID,
		SelectedCarID: req.SelectedCarID,
		Status:        constants.ClaimStatusPending,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&claim).Error; err != nil {
		return writePGError(c, "Create", err)
	}

	return helper.JsonCreated(c, fiber.Map{"claim": claim})
}

/* =========================
   PatchStatus - admin transition (COALESCE semantics)
   ========================= */

func (ctl *ClaimRequestController) PatchStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req d.PatchClaimStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !req.ValidStatus() {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"status must be one of: "+strings.Join(constants.ClaimStatuses, ", "))
	}
	if !req.HasChanges() {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ClaimRequest{}).
		Where("id = ?", id)
	if req.RowVersion != nil {
		q = q.Where("row_version = ?", *req.RowVersion)
	}

	res := q.Updates(req.ToUpdates())
	if res.Error != nil {
		return writePGError(c, "PatchStatus", res.Error)
	}
	if res.RowsAffected == 0 {
		// either the claim is gone or the version check lost the race
		var n int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&m.ClaimRequest{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return writePGError(c, "PatchStatus", err)
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Claim not found")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Claim was modified by another request")
	}

	var claim m.ClaimRequest
	if err := ctl.DB.WithContext(c.UserContext()).First(&claim, id).Error; err != nil {
		return writePGError(c, "PatchStatus", err)
	}
	return helper.JsonOK(c, fiber.Map{"claim": claim})
}

/* =========================
   Correction - customer marks the claim incomplete
   Both writes (status flip + timeline step) commit or roll back
   together.
   ========================= */

func (ctl *ClaimRequestController) Correction(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req d.CorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// customers may only correct their own claims
	ownScope := func(q *gorm.DB) *gorm.DB {
		q = q.Where("id = ?", id)
		if !p.IsAdmin() {
			q = q.Where("user_id = ?", p.UserID)
		}
		return q
	}

	var claim m.ClaimRequest
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var priorStatus string
		if err := ownScope(tx.Model(&m.ClaimRequest{})).
			Select("status").
			Scan(&priorStatus).Error; err != nil {
			return err
		}

		res := ownScope(tx.Model(&m.ClaimRequest{})).
			Updates(map[string]any{
				"status":      constants.ClaimStatusIncomplete,
				"updated_at":  gorm.Expr("NOW()"),
				"row_version": gorm.Expr("row_version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// next step_order = max+1, computed inside the same tx
		var nextOrder int
		if err := tx.Model(&m.ClaimRequestStep{}).
			Where("claim_request_id = ?", id).
			Select("COALESCE(MAX(step_order), 0) + 1").
			Scan(&nextOrder).Error; err != nil {
			return err
		}

		meta, _ := json.Marshal(map[string]string{
			"from_status": priorStatus,
			"to_status":   constants.ClaimStatusIncomplete,
		})
		step := m.ClaimRequestStep{
			ClaimRequestID: id,
			StepType:       constants.StepTypeCorrected,
			StepOrder:      nextOrder,
			Note:           strings.TrimSpace(req.Note),
			StepMeta:       datatypes.JSON(meta),
		}
		if err := tx.Create(&step).Error; err != nil {
			return err
		}

		return tx.First(&claim, id).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Claim not found")
		}
		return writePGError(c, "Correction", txErr)
	}

	return helper.JsonOK(c, fiber.Map{"claim": claim})
}

/* =========================
   RebindAccident - repoint accident_detail_id
   ========================= */

func (ctl *ClaimRequestController) RebindAccident(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req d.RebindAccidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exists int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m.AccidentDetail{}).Where("id = ?", req.AccidentDetailID).
		Count(&exists).Error; err != nil {
		return writePGError(c, "RebindAccident", err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Accident detail not found")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ClaimRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"accident_detail_id": req.AccidentDetailID,
			"updated_at":         gorm.Expr("NOW()"),
			"row_version":        gorm.Expr("row_version + 1"),
		})
	if res.Error != nil {
		return writePGError(c, "RebindAccident", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Claim not found")
	}

	var claim m.ClaimRequest
	if err := ctl.DB.WithContext(c.UserContext()).First(&claim, id).Error; err != nil {
		return writePGError(c, "RebindAccident", err)
	}
	return helper.JsonOK(c, fiber.Map{"claim": claim})
}

/* =========================
   List - claims with nested images + steps
   ========================= */

func (ctl *ClaimRequestController) List(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	limit := helper.ResolveLimit(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ClaimRequest{}).
		Preload("DamageImages").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Order("created_at DESC").
		Limit(limit)

	// customers only ever see their own claims
	if p.IsAdmin() {
		if uid := strings.TrimSpace(c.Query("user_id")); uid != "" {
			q = q.Where("user_id = ?", uid)
		}
	} else {
		q = q.Where("user_id = ?", p.UserID)
	}

	var claims []m.ClaimRequest
	if err := q.Find(&claims).Error; err != nil {
		return writePGError(c, "List", err)
	}
	return helper.JsonOK(c, fiber.Map{"data": claims})
}

/* =========================
   Detail - full nested read incl. annotations
   ========================= */

func (ctl *ClaimRequestController) Detail(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	claimID, err := strconv.ParseUint(strings.TrimSpace(c.Query("claim_id")), 10, 64)
	if err != nil || claimID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "claim_id is required")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Preload("AccidentDetail").
		Preload("DamageImages").
		Preload("DamageImages.Annotations").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Where("id = ?", claimID)

	if !p.IsAdmin() {
		q = q.Where("user_id = ?", p.UserID)
	}

	var claim m.ClaimRequest
	if err := q.First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Claim not found")
		}
		return writePGError(c, "Detail", err)
	}
	return helper.JsonOK(c, fiber.Map{"data": claim})
}
