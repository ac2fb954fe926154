package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ImageDamageAnnotation is one labeled bounding box on an evaluation
// image. Coordinates are normalized to the image (x,y in [0,1]; w,h in
// [0.0001,1] so a box can never collapse to zero area).
type ImageDamageAnnotation struct {
	ID                int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EvaluationImageID int64 `gorm:"column:evaluation_image_id;not null;index" json:"evaluation_image_id"`

	PartName   string         `gorm:"column:part_name;type:varchar(100)" json:"part_name"`
	DamageName pq.StringArray `gorm:"column:damage_name;type:text[]" json:"damage_name"`

	Severity    string `gorm:"column:severity;type:varchar(1);default:'A'" json:"severity"`
	AreaPercent *int   `gorm:"column:area_percent" json:"area_percent"`

	X float64 `gorm:"column:x;type:numeric(5,3)" json:"x"`
	Y float64 `gorm:"column:y;type:numeric(5,3)" json:"y"`
	W float64 `gorm:"column:w;type:numeric(6,4)" json:"w"`
	H float64 `gorm:"column:h;type:numeric(6,4)" json:"h"`

	Confidence *float64 `gorm:"column:confidence" json:"confidence"`
	MaskIoU    *float64 `gorm:"column:mask_iou" json:"mask_iou"`

	Source    string     `gorm:"column:source;type:varchar(10);default:'manual'" json:"source"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ImageDamageAnnotation) TableName() string {
	return "image_damage_annotations"
}
