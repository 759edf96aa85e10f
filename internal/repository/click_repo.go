package repository

import (
	"time"

	"launchpad/internal/models"

	"gorm.io/gorm"
)

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Create(c *models.ReferralClick) error {
	return r.db.Create(c).Error
}

// CountSince returns how many clicks were recorded for code at or after since.
func (r *ClickRepository) CountSince(code string, since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.ReferralClick{}).
		Where("ref_code = ? AND created_at >= ?", code, since).
		Count(&n).Error
	return n, err
}

// HasMatchSince reports whether any click recorded for code at or after
// since matches the visitor on any fingerprint dimension: cookie, IP /24
// prefix or user-agent hash. One disjunction, evaluated in the store.
func (r *ClickRepository) HasMatchSince(code string, since time.Time, cookieID, ip24, uaHash string) (bool, error) {
	var n int64
	err := r.db.Model(&models.ReferralClick{}).
		Where("ref_code = ? AND created_at >= ?", code, since).
		Where("cookie_id = ? OR ip24 = ? OR ua_hash = ?", cookieID, ip24, uaHash).
		Count(&n).Error
	return n > 0, err
}
