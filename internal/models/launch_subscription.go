package models

import "time"

// LaunchSubscription is one waitlist signup, independent of the referral
// system. EmailHash is unique, so repeated signups are no-ops.
type LaunchSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	EmailHash string    `gorm:"uniqueIndex;size:128;not null" json:"-"`
	EventType string    `gorm:"size:64;not null" json:"event_type"`
	EventDate time.Time `gorm:"not null" json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (LaunchSubscription) TableName() string { return "launch_subscriptions" }
