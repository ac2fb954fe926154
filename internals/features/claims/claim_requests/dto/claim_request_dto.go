package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"claimku_backend/internals/constants"
)

type CreateClaimRequest struct {
	SelectedCarID uint64 `json:"selected_car_id" validate:"required,gt=0"`
}

// PatchClaimStatusRequest carries the admin transition. Semantics are
// COALESCE-like: a field left out of the JSON keeps its stored value.
// RowVersion is optional - when the client sends the version it read,
// a stale write comes back as 409 instead of silently winning.
type PatchClaimStatusRequest struct {
	Status     *string    `json:"status"`
	AdminNote  *string    `json:"admin_note"`
	ApprovedBy *uuid.UUID `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	RowVersion *int64     `json:"row_version"`
}

// HasChanges reports whether the patch carries at least one field.
func (r PatchClaimStatusRequest) HasChanges() bool {
	return r.Status != nil || r.AdminNote != nil || r.ApprovedBy != nil || r.ApprovedAt != nil
}

// ValidStatus rejects anything outside the closed status set.
func (r PatchClaimStatusRequest) ValidStatus() bool {
	return r.Status == nil || constants.IsValidClaimStatus(*r.Status)
}

// ToUpdates builds the column map for a single-row UPDATE. Only
// provided fields are written; updated_at and row_version always move.
func (r PatchClaimStatusRequest) ToUpdates() map[string]any {
	updates := map[string]any{
		"updated_at":  time.Now(),
		"row_version": gorm.Expr("row_version + 1"),
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.AdminNote != nil {
		updates["admin_note"] = *r.AdminNote
	}
	if r.ApprovedBy != nil {
		updates["approved_by"] = *r.ApprovedBy
	}
	if r.ApprovedAt != nil {
		updates["approved_at"] = *r.ApprovedAt
	}
	return updates
}

type CorrectionRequest struct {
	Note string `json:"note"`
}

type RebindAccidentRequest struct {
	AccidentDetailID uint64 `json:"accident_detail_id" validate:"required,gt=0"`
}
