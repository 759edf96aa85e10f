package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"launchpad/internal/repository"

	"github.com/redis/go-redis/v9"
)

const leaderboardCacheKey = "leaderboard:snapshot"

// Position is a user's place on the leaderboard. Rank is nil when the code
// is unknown; Total always counts every participant.
type Position struct {
	Rank   *int `json:"rank"`
	Total  int  `json:"total"`
	Points *int `json:"points,omitempty"`
}

type rankedEntry struct {
	Code   string `json:"code"`
	Points int    `json:"points"`
}

// LeaderboardService answers rank lookups over the full ordered user set.
// The ordered snapshot is cached in Redis for a short TTL; ranks are
// stale-tolerant so a few seconds of lag is fine. A nil cache client means
// every lookup goes straight to the database.
type LeaderboardService struct {
	userRepo *repository.UserRepository
	cache    *redis.Client
	ttl      time.Duration
}

func NewLeaderboardService(userRepo *repository.UserRepository, cache *redis.Client, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo, cache: cache, ttl: ttl}
}

// PositionFor returns the 1-based rank of code, ordered by points descending
// with earlier signup winning ties.
func (s *LeaderboardService) PositionFor(ctx context.Context, code string) (Position, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return Position{}, err
	}
	pos := Position{Total: len(entries)}
	for i, e := range entries {
		if e.Code == code {
			rank, points := i+1, e.Points
			pos.Rank = &rank
			pos.Points = &points
			break
		}
	}
	return pos, nil
}

func (s *LeaderboardService) snapshot(ctx context.Context) ([]rankedEntry, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []rankedEntry
			if json.Unmarshal([]byte(raw), &entries) == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			log.Printf("[leaderboard] cache read failed: %v", err)
		}
	}

	users, err := s.userRepo.ListRanked()
	if err != nil {
		return nil, err
	}
	entries := make([]rankedEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, rankedEntry{Code: u.ReferralCode, Points: u.Points})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, leaderboardCacheKey, raw, s.ttl).Err(); err != nil {
				log.Printf("[leaderboard] cache write failed: %v", err)
			}
		}
	}
	return entries, nil
}
