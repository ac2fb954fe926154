// file: internals/features/claims/claim_submit/controller/claim_submit_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"claimku_backend/internals/constants"
	claimModel "claimku_backend/internals/features/claims/claim_requests/model"
	d "claimku_backend/internals/features/claims/claim_submit/dto"
	svc "claimku_backend/internals/features/claims/claim_submit/service"
	annotModel "claimku_backend/internals/features/claims/image_annotations/model"
	helper "claimku_backend/internals/helpers"
	helperAuth "claimku_backend/internals/helpers/auth"
)

type ClaimSubmitController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClaimSubmitController {
	return &ClaimSubmitController{DB: db, Validate: v}
}

/* =========================
   Builders (normalize wire input → rows)
   ========================= */

func buildAccidentDetail(in *d.AccidentInput) claimModel.AccidentDetail {
	det := claimModel.AccidentDetail{
		AccidentType: strings.TrimSpace(in.AccidentType),
		AccidentDate: strings.TrimSpace(in.Date),
		AccidentTime: svc.NormalizeClockTime(in.Time),
		AreaType:     strings.TrimSpace(in.AreaType),
		FileURL:      strings.TrimSpace(in.FileURL),
		MediaType:    strings.TrimSpace(in.MediaType),
	}
	if loc := in.Location; loc != nil {
		det.Province = strings.TrimSpace(loc.Province)
		det.District = strings.TrimSpace(loc.District)
		det.Road = strings.TrimSpace(loc.Road)
		det.NearbyPlace = strings.TrimSpace(loc.Nearby)
		det.LocationDetails = strings.TrimSpace(loc.Details)
		det.Latitude = svc.RoundCoord(loc.Lat)
		det.Longitude = svc.RoundCoord(loc.Lng)
		det.Accuracy = svc.NormalizeAccuracy(loc.Accuracy)
	}
	return det
}

// buildEvaluationImages drops entries without a URL and defaults the
// side label when the client sends an unknown one.
func buildEvaluationImages(photos []d.DamagePhotoInput, claimID uint64) []claimModel.EvaluationImage {
	images := make([]claimModel.EvaluationImage, 0, len(photos))
	for _, p := range photos {
		url := strings.TrimSpace(p.URL)
		if url == "" {
			continue
		}
		side := strings.TrimSpace(p.Side)
		if !constants.IsValidImageSide(side) {
			side = constants.SideUnspecified
		}
		images = append(images, claimModel.EvaluationImage{
			ClaimID:     claimID,
			OriginalURL: url,
			DamageNote:  strings.TrimSpace(p.Note),
			Side:        side,
		})
	}
	return images
}

/* =========================
   Submit - accident + claim + photos, all-or-nothing
   ========================= */

func (ctl *ClaimSubmitController) Submit(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req d.SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	accident := buildAccidentDetail(req.Accident)
	userID := p.UserID

	var claimID uint64
	var inserted int
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&accident).Error; err != nil {
			return err
		}

		claim := claimModel.ClaimRequest{
			UserID:           &userID,
			SelectedCarID:    req.SelectedCarID,
			AccidentDetailID: accident.ID,
			Status:           constants.ClaimStatusPending,
		}
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}
		claimID = claim.ID

		images := buildEvaluationImages(req.DamagePhotos, claim.ID)
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		inserted = len(images)
		return nil
	})
	if txErr != nil {
		log.Printf("[ClaimSubmit.Submit] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit claim")
	}

	return helper.JsonCreated(c, fiber.Map{
		"data": fiber.Map{
			"accident_detail_id":    accident.ID,
			"claim_id":              claimID,
			"inserted_image_damage": inserted,
		},
	})
}

/* =========================
   Update - resubmission of an incomplete claim
   One transaction: overwrite accident, replace the photo set (their
   annotations go first so nothing is orphaned), reset the claim to
   pending with approval fields cleared.
   ========================= */

func (ctl *ClaimSubmitController) Update(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	idRaw := strings.TrimSpace(c.Params("id"))
	claimID, err := strconv.ParseUint(idRaw, 10, 64)
	if err != nil || claimID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid claim id")
	}

	var req d.UpdateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	accident := buildAccidentDetail(req.Accident)

	var updatedImages int
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// lock the claim row so two resubmits of the same claim serialize
		var claim claimModel.ClaimRequest
		q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", claimID)
		if !p.IsAdmin() {
			q = q.Where("user_id = ?", p.UserID)
		}
		if err := q.First(&claim).Error; err != nil {
			return err
		}

		// 1) overwrite the accident row in place (full overwrite, no COALESCE)
		if claim.AccidentDetailID != 0 {
			overwrite := map[string]any{
				"accident_type":    accident.AccidentType,
				"accident_date":    accident.AccidentDate,
				"accident_time":    accident.AccidentTime,
				"area_type":        accident.AreaType,
				"province":         accident.Province,
				"district":         accident.District,
				"road":             accident.Road,
				"nearby_place":     accident.NearbyPlace,
				"location_details": accident.LocationDetails,
				"latitude":         accident.Latitude,
				"longitude":        accident.Longitude,
				"accuracy":         accident.Accuracy,
				"file_url":         accident.FileURL,
				"media_type":       accident.MediaType,
				"updated_at":       gorm.Expr("NOW()"),
			}
			if err := tx.Model(&claimModel.AccidentDetail{}).
				Where("id = ?", claim.AccidentDetailID).
				Updates(overwrite).Error; err != nil {
				return err
			}
		} else {
			// claim shell created without an accident yet - bind one now
			if err := tx.Create(&accident).Error; err != nil {
				return err
			}
			claim.AccidentDetailID = accident.ID
		}

		// 2) replace-all photo set; annotations of the old images first
		imageIDs := tx.Model(&claimModel.EvaluationImage{}).
			Select("id").Where("claim_id = ?", claim.ID)
		if err := tx.Where("evaluation_image_id IN (?)", imageIDs).
			Delete(&annotModel.ImageDamageAnnotation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("claim_id = ?", claim.ID).
			Delete(&claimModel.EvaluationImage{}).Error; err != nil {
			return err
		}
		images := buildEvaluationImages(req.DamagePhotos, claim.ID)
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		updatedImages = len(images)

		// 3) back to pending, approval fields cleared
		return tx.Model(&claimModel.ClaimRequest{}).
			Where("id = ?", claim.ID).
			Updates(map[string]any{
				"accident_detail_id": claim.AccidentDetailID,
				"status":             constants.ClaimStatusPending,
				"admin_note":         nil,
				"approved_by":        nil,
				"approved_at":        nil,
				"updated_at":         gorm.Expr("NOW()"),
				"row_version":        gorm.Expr("row_version + 1"),
			}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Claim not found")
		}
		log.Printf("[ClaimSubmit.Update] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resubmit claim")
	}

	return helper.JsonOK(c, fiber.Map{
		"claim_id":       claimID,
		"updated_images": updatedImages,
	})
}
