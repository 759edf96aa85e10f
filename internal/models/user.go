package models

import "time"

// User is a referral-program participant. The referral code is minted once
// and never reassigned; points are a monotonically increasing counter.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	ReferralCode string    `gorm:"uniqueIndex;size:16;not null" json:"referral_code"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	CreatedAt    time.Time `json:"created_at"` // tie-break for ranking
}

func (User) TableName() string { return "users" }
