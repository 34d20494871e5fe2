package main

import (
	"context"
	"testing"

	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/platform/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, seed(ctx, store, bcrypt.MinCost))
	require.NoError(t, seed(ctx, store, bcrypt.MinCost))

	users, err := store.Users().ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	rooms, err := store.Rooms().ListRooms(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "100.00", rooms[0].Price.StringFixed(2))
	assert.Equal(t, domain.RoomAvailable, rooms[2].Status)

	staff, err := store.Users().FindUserByUsername(ctx, "staff")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(staff.PasswordHash, "staff123"))
}
