package model

import (
	"time"

	annotModel "claimku_backend/internals/features/claims/image_annotations/model"
)

// EvaluationImage is one damage photo on a claim. The whole set is
// replaced on resubmission (delete + reinsert, never merged).
// IsAnnotated is derived: true iff the image has at least one
// annotation row after the last replace-set save.
type EvaluationImage struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClaimID uint64 `gorm:"column:claim_id;not null;index" json:"claim_id"`

	OriginalURL string `gorm:"column:original_url;type:text;not null" json:"original_url"`
	DamageNote  string `gorm:"column:damage_note;type:text" json:"damage_note"`
	Side        string `gorm:"column:side;type:varchar(20);default:'ไม่ระบุ'" json:"side"`

	IsAnnotated bool `gorm:"column:is_annotated;not null;default:false" json:"is_annotated"`

	RowVersion int64 `gorm:"column:row_version;not null;default:1" json:"row_version"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Annotations []annotModel.ImageDamageAnnotation `gorm:"foreignKey:EvaluationImageID;references:ID" json:"annotations,omitempty"`
}

func (EvaluationImage) TableName() string {
	return "evaluation_images"
}
