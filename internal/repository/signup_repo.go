package repository

import (
	"launchpad/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignupRepository struct {
	db *gorm.DB
}

func NewSignupRepository(db *gorm.DB) *SignupRepository {
	return &SignupRepository{db: db}
}

// CreateIgnoreDuplicateHash inserts the signup unless its email hash was
// ever seen before, for any code. Returns whether the row was created.
func (r *SignupRepository) CreateIgnoreDuplicateHash(s *models.ReferralSignup) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email_hash"}},
		DoNothing: true,
	}).Create(s)
	return res.RowsAffected > 0, res.Error
}
