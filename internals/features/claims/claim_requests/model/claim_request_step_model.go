package model

import (
	"time"

	"gorm.io/datatypes"
)

// ClaimRequestStep is one append-only timeline entry. Rows are never
// updated or deleted; StepOrder is monotonic per claim (max+1 at
// insert time, inside the same transaction as the triggering write).
type ClaimRequestStep struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClaimRequestID uint64 `gorm:"column:claim_request_id;not null;index" json:"claim_request_id"`

	StepType  string `gorm:"column:step_type;type:varchar(50);not null" json:"step_type"`
	StepOrder int    `gorm:"column:step_order;not null" json:"step_order"`
	Note      string `gorm:"column:note;type:text" json:"note"`

	StepMeta datatypes.JSON `gorm:"column:step_meta;type:jsonb" json:"step_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClaimRequestStep) TableName() string {
	return "claim_request_steps"
}
