package service

import (
	"context"
	"testing"
	"time"

	"launchpad/internal/models"
	"launchpad/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionForOrdersByPointsThenAge(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()
	require.NoError(t, db.Create(&[]models.User{
		{Email: "a@example.com", ReferralCode: "AAAA2222", Points: 5, CreatedAt: now.Add(-2 * time.Hour)},
		{Email: "b@example.com", ReferralCode: "BBBB2222", Points: 5, CreatedAt: now.Add(-1 * time.Hour)},
		{Email: "c@example.com", ReferralCode: "CCCC2222", Points: 9, CreatedAt: now},
	}).Error)

	svc := NewLeaderboardService(repository.NewUserRepository(db), nil, 0)
	ctx := context.Background()

	pos, err := svc.PositionFor(ctx, "CCCC2222")
	require.NoError(t, err)
	require.NotNil(t, pos.Rank)
	assert.Equal(t, 1, *pos.Rank)
	assert.Equal(t, 3, pos.Total)
	require.NotNil(t, pos.Points)
	assert.Equal(t, 9, *pos.Points)

	// equal points: the earlier signup ranks higher
	pos, err = svc.PositionFor(ctx, "AAAA2222")
	require.NoError(t, err)
	require.NotNil(t, pos.Rank)
	assert.Equal(t, 2, *pos.Rank)

	pos, err = svc.PositionFor(ctx, "BBBB2222")
	require.NoError(t, err)
	require.NotNil(t, pos.Rank)
	assert.Equal(t, 3, *pos.Rank)
}

func TestPositionForUnknownCode(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{Email: "a@example.com", ReferralCode: "AAAA2222", Points: 1}).Error)

	svc := NewLeaderboardService(repository.NewUserRepository(db), nil, 0)
	pos, err := svc.PositionFor(context.Background(), "MISSING")
	require.NoError(t, err)
	assert.Nil(t, pos.Rank)
	assert.Nil(t, pos.Points)
	assert.Equal(t, 1, pos.Total)
}
