package repository

import (
	"launchpad/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// CreateIgnoreDuplicateHash inserts the subscription unless the normalized
// email was already subscribed. Returns whether the row was created.
func (r *SubscriptionRepository) CreateIgnoreDuplicateHash(s *models.LaunchSubscription) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email_hash"}},
		DoNothing: true,
	}).Create(s)
	return res.RowsAffected > 0, res.Error
}
