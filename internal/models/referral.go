package models

import "time"

// ReferralClick is one attributed click on a referral link. Rows are
// append-only and deliberately carry no FK to users: clicks on codes with no
// owner are tolerated. At most one row exists per (code, UTC day, visitor
// fingerprint dimension) - see service.ClickService.
type ReferralClick struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RefCode   string    `gorm:"size:16;not null;index:idx_referral_clicks_code_day" json:"ref_code"`
	IP24      string    `gorm:"column:ip24;size:64" json:"ip24"`
	UAHash    string    `gorm:"column:ua_hash;size:128" json:"ua_hash"`
	CookieID  string    `gorm:"size:64" json:"cookie_id"`
	CreatedAt time.Time `gorm:"index:idx_referral_clicks_code_day" json:"created_at"`
}

func (ReferralClick) TableName() string { return "referral_clicks" }

// ReferralSignup is one confirmed referral conversion. EmailHash is the
// SHA-256 of the normalized email and is unique across all codes: the same
// person can trigger at most one bonus system-wide. The raw email is kept
// separately for later contact.
type ReferralSignup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RefCode   string    `gorm:"size:16;not null;index" json:"ref_code"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	EmailHash string    `gorm:"uniqueIndex;size:128;not null" json:"-"`
	VisitorID *string   `gorm:"size:64" json:"visitor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReferralSignup) TableName() string { return "referral_signups" }
