package model

import "time"

// TokenBlacklist holds revoked access tokens until they expire on
// their own; a scheduler prunes rows past ExpiredAt.
type TokenBlacklist struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"column:token;type:text;not null;uniqueIndex" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
