package policies

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	userModel "claimku_backend/internals/features/users/auth/model"
	"claimku_backend/internals/features/users/policies/model"
)

type policySeed struct {
	UserEmail    string `json:"user_email"`
	PolicyNumber string `json:"policy_number"`
	CarBrand     string `json:"car_brand"`
	CarModel     string `json:"car_model"`
	CarYear      int    `json:"car_year"`
	LicensePlate string `json:"license_plate"`
	CoverageType string `json:"coverage_type"`
}

func SeedPoliciesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var seedRows []policySeed
	if err := json.Unmarshal(file, &seedRows); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, s := range seedRows {
		var n int64
		if err := db.Model(&model.InsurancePolicy{}).
			Where("policy_number = ?", s.PolicyNumber).Count(&n).Error; err != nil {
			log.Printf("❌ Seed lookup failed for '%s': %v", s.PolicyNumber, err)
			continue
		}
		if n > 0 {
			log.Printf("ℹ️ Policy '%s' already exists, skipped.", s.PolicyNumber)
			continue
		}

		var owner userModel.User
		if err := db.Where("email = ?", s.UserEmail).First(&owner).Error; err != nil {
			log.Printf("❌ Owner '%s' not found for policy '%s', skipped.", s.UserEmail, s.PolicyNumber)
			continue
		}

		policy := model.InsurancePolicy{
			UserID:       owner.ID,
			PolicyNumber: s.PolicyNumber,
			CarBrand:     s.CarBrand,
			CarModel:     s.CarModel,
			CarYear:      s.CarYear,
			LicensePlate: s.LicensePlate,
			CoverageType: s.CoverageType,
			IsActive:     true,
		}
		if err := db.Create(&policy).Error; err != nil {
			log.Printf("❌ Seed insert failed for '%s': %v", s.PolicyNumber, err)
			continue
		}
		log.Printf("✅ Seeded policy '%s' for %s", s.PolicyNumber, s.UserEmail)
	}
}
