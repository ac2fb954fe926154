package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimRequest is the lifecycle root of one damage claim.
// Status only ever holds one of constants.ClaimStatuses; the API
// boundary rejects anything else. RowVersion increments on every
// mutation so concurrent writers get a 409 instead of silently losing
// an update.
type ClaimRequest struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	UserID           *uuid.UUID `gorm:"column:user_id;type:uuid;index" json:"user_id,omitempty"`
	SelectedCarID    uint64     `gorm:"column:selected_car_id;not null" json:"selected_car_id"`
	AccidentDetailID uint64     `gorm:"column:accident_detail_id" json:"accident_detail_id"`

	Status    string  `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	AdminNote *string `gorm:"column:admin_note;type:text" json:"admin_note"`

	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid" json:"approved_by"`
	ApprovedAt *time.Time `gorm:"column:approved_at" json:"approved_at"`

	RowVersion int64 `gorm:"column:row_version;not null;default:1" json:"row_version"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Nested reads (list/detail)
	AccidentDetail *AccidentDetail    `gorm:"foreignKey:AccidentDetailID;references:ID" json:"accident_detail,omitempty"`
	DamageImages   []EvaluationImage  `gorm:"foreignKey:ClaimID;references:ID" json:"damage_images,omitempty"`
	Steps          []ClaimRequestStep `gorm:"foreignKey:ClaimRequestID;references:ID" json:"steps,omitempty"`
}

func (ClaimRequest) TableName() string {
	return "claim_requests"
}
