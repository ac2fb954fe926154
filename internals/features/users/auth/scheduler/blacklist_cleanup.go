package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	m "claimku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler prunes expired blacklist rows every
// hour so the table never grows past the live token window.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expired_at <= NOW()").Delete(&m.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[scheduler] blacklist cleanup err: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[scheduler] blacklist cleanup: %d expired tokens removed", res.RowsAffected)
			}
		}
	}()
}
