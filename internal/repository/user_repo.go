package repository

import (
	"launchpad/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail looks up a user by the exact raw email, no normalization.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByCode(code string) (*models.User, error) {
	var u models.User
	err := r.db.Where("referral_code = ?", code).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CodeExists(code string) (bool, error) {
	var n int64
	err := r.db.Model(&models.User{}).Where("referral_code = ?", code).Count(&n).Error
	return n > 0, err
}

// CreateIgnoreDuplicateEmail inserts the user unless a row with the same
// email already exists, in which case the insert is silently dropped.
// Returns whether this call actually created the row.
func (r *UserRepository) CreateIgnoreDuplicateEmail(u *models.User) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(u)
	return res.RowsAffected > 0, res.Error
}

// AddPointsByCode atomically increments the code owner's points. A code with
// no owning user updates zero rows, which is not an error.
func (r *UserRepository) AddPointsByCode(code string, delta int) error {
	return r.db.Model(&models.User{}).
		Where("referral_code = ?", code).
		UpdateColumn("points", gorm.Expr("points + ?", delta)).Error
}

// ListRanked returns all users in leaderboard order: points descending,
// earlier signup winning ties.
func (r *UserRepository) ListRanked() ([]models.User, error) {
	var users []models.User
	err := r.db.Select("referral_code", "points", "created_at").
		Order("points DESC, created_at ASC").
		Find(&users).Error
	return users, err
}
