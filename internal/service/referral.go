package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"

	"launchpad/internal/domain"
	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/emailx"
	"launchpad/pkg/mailer"

	"gorm.io/gorm"
)

// Codes avoid visually ambiguous characters (0/O, 1/I). The 32-symbol
// alphabet keeps the modulo mapping from random bytes uniform.
const (
	codeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength      = 8
	maxCodeAttempts = 5
)

// ErrSelfReferral is returned when someone confirms a signup with the code
// owner's own email, in any +tag or case variant.
var ErrSelfReferral = errors.New("self referral not allowed")

// ReferralService handles code issuance and signup confirmation.
type ReferralService struct {
	userRepo   *repository.UserRepository
	signupRepo *repository.SignupRepository
	mail       mailer.Sender
	baseURL    string
}

func NewReferralService(
	userRepo *repository.UserRepository,
	signupRepo *repository.SignupRepository,
	mail mailer.Sender,
	baseURL string,
) *ReferralService {
	return &ReferralService{
		userRepo:   userRepo,
		signupRepo: signupRepo,
		mail:       mail,
		baseURL:    baseURL,
	}
}

// generateCode returns a random 8-character code from the referral alphabet.
func generateCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	out := make([]byte, codeLength)
	for i, v := range b {
		out[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(out), nil
}

// IssueCode returns the referral code bound to email, minting one when the
// email is new. The lookup is on the exact raw email: casing variants get
// their own codes, only confirmation-side dedup normalizes.
func (s *ReferralService) IssueCode(email string) (code string, existing bool, err error) {
	u, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return u.ReferralCode, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	code, err = generateCode()
	if err != nil {
		return "", false, err
	}
	// Collision is astronomically unlikely at 32^8; the retry cap is a
	// safety net, not a load-bearing mechanism.
	for i := 1; i < maxCodeAttempts; i++ {
		taken, err := s.userRepo.CodeExists(code)
		if err != nil {
			return "", false, err
		}
		if !taken {
			break
		}
		if code, err = generateCode(); err != nil {
			return "", false, err
		}
	}

	created, err := s.userRepo.CreateIgnoreDuplicateEmail(&models.User{Email: email, ReferralCode: code})
	if err != nil {
		return "", false, err
	}
	if !created {
		// Lost a race with a concurrent request for the same email.
		// Re-read so the caller learns the code that actually won.
		winner, err := s.userRepo.GetByEmail(email)
		if err != nil {
			return "", false, err
		}
		return winner.ReferralCode, true, nil
	}

	if s.mail != nil {
		link := fmt.Sprintf("%s/r/%s", s.baseURL, code)
		if err := s.mail.SendReferralLink(context.Background(), email, link); err != nil {
			log.Printf("[referral] failed to send referral link to %s: %v", email, err)
		}
	}
	return code, false, nil
}

// ConfirmSignup awards the one-time signup bonus to the owner of code if the
// submitted email has never confirmed a referral before, for any code. The
// bonus update silently touches zero rows when the code has no owner; the
// signup row is still recorded.
func (s *ReferralService) ConfirmSignup(code, email, visitorID string) (awarded bool, err error) {
	normalized := emailx.Normalize(email)
	emailHash := emailx.HashHex(normalized)

	owner, err := s.userRepo.GetByCode(code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if owner != nil && owner.Email != "" && emailx.Normalize(owner.Email) == normalized {
		return false, ErrSelfReferral
	}

	signup := &models.ReferralSignup{
		RefCode:   code,
		Email:     email,
		EmailHash: emailHash,
	}
	if visitorID != "" {
		signup.VisitorID = &visitorID
	}
	created, err := s.signupRepo.CreateIgnoreDuplicateHash(signup)
	if err != nil {
		return false, err
	}
	if !created {
		return false, nil
	}
	if err := s.userRepo.AddPointsByCode(code, domain.SignupBonusPoints); err != nil {
		return false, err
	}
	return true, nil
}
