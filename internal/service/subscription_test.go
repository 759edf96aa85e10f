package service

import (
	"testing"
	"time"

	"launchpad/internal/models"
	"launchpad/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeDedupsNormalizedEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubscriptionService(repository.NewSubscriptionRepository(db))
	eventDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Subscribe("User+wedding@Example.com", "wedding", eventDate)
	require.NoError(t, err)
	assert.True(t, created)

	// any variant of the same normalized email is a no-op
	created, err = svc.Subscribe("user@example.com", "party", eventDate)
	require.NoError(t, err)
	assert.False(t, created)

	var rows int64
	require.NoError(t, db.Model(&models.LaunchSubscription{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	// the raw email is kept as submitted
	var sub models.LaunchSubscription
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "User+wedding@Example.com", sub.Email)
	assert.Equal(t, "wedding", sub.EventType)
}
