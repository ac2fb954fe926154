// file: internals/features/claims/image_annotations/controller/image_annotation_controller.go
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

	claimModel "claimku_backend/internals/features/claims/claim_requests/model"
	d "claimku_backend/internals/features/claims/image_annotations/dto"
	m "claimku_backend/internals/features/claims/image_annotations/model"
	svc "claimku_backend/internals/features/claims/image_annotations/service"
	helper "claimku_backend/internals/helpers"
	helperAuth "claimku_backend/internals/helpers/auth"
)

type ImageAnnotationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ImageAnnotationController {
	return &ImageAnnotationController{DB: db, Validate: v}
}

/* =========================
   ByImage - annotations of one image
   ========================= */

func (ctl *ImageAnnotationController) ByImage(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return err
	}

	imageID, err := strconv.ParseInt(strings.TrimSpace(c.Query("image_id")), 10, 64)
	if err != nil || imageID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "image_id is required")
	}

	// customers only see annotations on their own claims
	if !p.IsAdmin() {
		var n int64
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&claimModel.EvaluationImage{}).
			Joins("JOIN claim_requests ON claim_requests.id = evaluation_images.claim_id").
			Where("evaluation_images.id = ? AND claim_requests.user_id = ?", imageID, p.UserID).
			Count(&n).Error; err != nil {
			log.Printf("[ImageAnnotation.ByImage] db error: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Evaluation image not found")
		}
	}

	var annotations []m.ImageDamageAnnotation
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("evaluation_image_id = ?", imageID).
		Order("id ASC").
		Find(&annotations).Error; err != nil {
		log.Printf("[ImageAnnotation.ByImage] db error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, fiber.Map{"data": annotations})
}

/* =========================
   Save - replace the whole annotation set of one image
   DELETE + bulk INSERT + is_annotated flip, one transaction. The image
   row is locked first so two concurrent saves serialize instead of
   interleaving their deletes and inserts.
   ========================= */

func (ctl *ImageAnnotationController) Save(c *fiber.Ctx) error {
	var req d.SaveAnnotationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	normalized := svc.NormalizeBoxes(req.Boxes, req.ImageID, req.CreatedBy)
	isAnnotated := len(normalized) > 0

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var img claimModel.EvaluationImage
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&img, req.ImageID).Error; err != nil {
			return err
		}

		if err := tx.Where("evaluation_image_id = ?", req.ImageID).
			Delete(&m.ImageDamageAnnotation{}).Error; err != nil {
			return err
		}
		if len(normalized) > 0 {
			if err := tx.Create(&normalized).Error; err != nil {
				return err
			}
		}

		return tx.Model(&claimModel.EvaluationImage{}).
			Where("id = ?", req.ImageID).
			Updates(map[string]any{
				"is_annotated": isAnnotated,
				"updated_at":   gorm.Expr("NOW()"),
				"row_version":  gorm.Expr("row_version + 1"),
			}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evaluation image not found")
		}
		log.Printf("[ImageAnnotation.Save] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save annotations")
	}

	return helper.JsonOK(c, fiber.Map{
		"saved":        len(normalized),
		"is_annotated": isAnnotated,
	})
}

/* =========================
   UpdateOne - single-box edit outside the bulk flow
   Same normalization as the replace-set path.
   ========================= */

func (ctl *ImageAnnotationController) UpdateOne(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid annotation id")
	}

	var req d.UpdateAnnotationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var existing m.ImageDamageAnnotation
	if err := ctl.DB.WithContext(c.UserContext()).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Annotation not found")
		}
		log.Printf("[ImageAnnotation.UpdateOne] db error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	box := svc.NormalizeBox(req.AnnotationBoxInput, existing.EvaluationImageID, existing.CreatedBy)
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ImageDamageAnnotation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"part_name":    box.PartName,
			"damage_name":  box.DamageName,
			"severity":     box.Severity,
			"area_percent": box.AreaPercent,
			"x":            box.X,
			"y":            box.Y,
			"w":            box.W,
			"h":            box.H,
			"confidence":   box.Confidence,
			"mask_iou":     box.MaskIoU,
			"source":       box.Source,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		log.Printf("[ImageAnnotation.UpdateOne] db error: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonOK(c, fiber.Map{"affected": res.RowsAffected})
}

/* =========================
   DeleteOne - single-box delete; is_annotated stays derived
   ========================= */

func (ctl *ImageAnnotationController) DeleteOne(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is not a valid annotation id")
	}

	var affected int64
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing m.ImageDamageAnnotation
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&m.ImageDamageAnnotation{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected

		// keep is_annotated in sync with the remaining row count
		var remaining int64
		if err := tx.Model(&m.ImageDamageAnnotation{}).
			Where("evaluation_image_id = ?", existing.EvaluationImageID).
			Count(&remaining).Error; err != nil {
			return err
		}
		return tx.Model(&claimModel.EvaluationImage{}).
			Where("id = ?", existing.EvaluationImageID).
			Updates(map[string]any{
				"is_annotated": remaining > 0,
				"updated_at":   gorm.Expr("NOW()"),
			}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Annotation not found")
		}
		log.Printf("[ImageAnnotation.DeleteOne] tx error: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete annotation")
	}

	return helper.JsonOK(c, fiber.Map{"affected": affected})
}
