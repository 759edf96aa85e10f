package service

import (
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/fingerprint"
)

// ClickResult reports what happened to one inbound referral click.
type ClickResult struct {
	Recorded bool // a new click row was stored
	Awarded  bool // a point increment was issued for the code owner
}

// ClickService attributes referral link clicks.
//
// Dedup and the daily cap run as separate statements with no wrapping
// transaction; under concurrent clicks for one code the cap can be off by a
// small amount. That is acceptable for a soft abuse throttle.
type ClickService struct {
	clickRepo *repository.ClickRepository
	userRepo  *repository.UserRepository
}

func NewClickService(clickRepo *repository.ClickRepository, userRepo *repository.UserRepository) *ClickService {
	return &ClickService{clickRepo: clickRepo, userRepo: userRepo}
}

// Attribute decides what one click on code is worth, scoped to the current
// UTC day: a duplicate fingerprint does nothing; a new visitor always gets a
// click row (so sustained abuse stays visible past the cap) and earns the
// owner a point only while the code is under its daily cap.
func (s *ClickService) Attribute(code string, fp fingerprint.Fingerprint) (ClickResult, error) {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour)

	count, err := s.clickRepo.CountSince(code, dayStart)
	if err != nil {
		return ClickResult{}, err
	}
	overCap := count >= domain.DailyClickCap

	dup, err := s.clickRepo.HasMatchSince(code, dayStart, fp.VisitorID, fp.IP24, fp.UAHash)
	if err != nil {
		return ClickResult{}, err
	}
	if dup {
		return ClickResult{}, nil
	}

	click := &models.ReferralClick{
		RefCode:  code,
		IP24:     fp.IP24,
		UAHash:   fp.UAHash,
		CookieID: fp.VisitorID,
	}
	if err := s.clickRepo.Create(click); err != nil {
		return ClickResult{}, err
	}
	res := ClickResult{Recorded: true}

	if !overCap {
		// Zero rows updated for an orphaned code is fine; the click row
		// above is still kept.
		if err := s.userRepo.AddPointsByCode(code, domain.ClickPoints); err != nil {
			return res, err
		}
		res.Awarded = true
	}
	return res, nil
}
