package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"claimku_backend/internals/features/users/auth/model"
)

type userSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed JSON: %v", err)
		return
	}

	var seedRows []userSeed
	if err := json.Unmarshal(file, &seedRows); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, s := range seedRows {
		var n int64
		if err := db.Model(&model.User{}).Where("email = ?", s.Email).Count(&n).Error; err != nil {
			log.Printf("❌ Seed lookup failed for '%s': %v", s.Email, err)
			continue
		}
		if n > 0 {
			log.Printf("ℹ️ User '%s' already exists, skipped.", s.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Hash failed for '%s': %v", s.Email, err)
			continue
		}
		user := model.User{
			UserName: s.UserName,
			Email:    s.Email,
			Password: string(hash),
			Role:     s.Role,
			Phone:    s.Phone,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Seed insert failed for '%s': %v", s.Email, err)
			continue
		}
		log.Printf("✅ Seeded user '%s' (%s)", s.Email, s.Role)
	}
}
