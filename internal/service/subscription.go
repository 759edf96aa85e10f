package service

import (
	"time"

	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/emailx"
)

// SubscriptionService handles waitlist signups.
type SubscriptionService struct {
	subRepo *repository.SubscriptionRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo}
}

// Subscribe records a waitlist signup. Repeated signups with the same
// normalized email are no-ops and report created=false.
func (s *SubscriptionService) Subscribe(email, eventType string, eventDate time.Time) (created bool, err error) {
	normalized := emailx.Normalize(email)
	return s.subRepo.CreateIgnoreDuplicateHash(&models.LaunchSubscription{
		Email:     email,
		EmailHash: emailx.HashHex(normalized),
		EventType: eventType,
		EventDate: eventDate,
	})
}
