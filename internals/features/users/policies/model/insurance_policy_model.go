package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsurancePolicy is one insured car of a customer. Claims reference a
// policy through selected_car_id.
type InsurancePolicy struct {
	ID     uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	PolicyNumber string `gorm:"column:policy_number;type:varchar(50);not null;unique" json:"policy_number"`
	CarBrand     string `gorm:"column:car_brand;type:varchar(50)" json:"car_brand"`
	CarModel     string `gorm:"column:car_model;type:varchar(50)" json:"car_model"`
	CarYear      int    `gorm:"column:car_year" json:"car_year"`
	LicensePlate string `gorm:"column:license_plate;type:varchar(20)" json:"license_plate"`
	CoverageType string `gorm:"column:coverage_type;type:varchar(50)" json:"coverage_type"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (InsurancePolicy) TableName() string {
	return "insurance_policies"
}
