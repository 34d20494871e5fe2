package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/platform/auth"
)

type seedUser struct {
	username, password, fullName string
	role                         domain.Role
}

var seedUsers = []seedUser{
	{"admin", "admin123", "Hotel Administrator", domain.RoleAdmin},
	{"staff", "staff123", "Front Desk", domain.RoleStaff},
	{"guest", "guest123", "Walk-in Guest", domain.RoleGuest},
}

var seedRooms = []domain.Room{
	{Number: "101", Type: "Standard", Price: decimal.RequireFromString("100.00")},
	{Number: "102", Type: "Deluxe", Price: decimal.RequireFromString("150.00")},
	{Number: "201", Type: "Suite", Price: decimal.RequireFromString("250.00")},
}

// seed adds the default accounts and rooms that are missing. Existing rows
// are left untouched.
func seed(ctx context.Context, store ports.Store, bcryptCost int) error {
	for _, su := range seedUsers {
		_, err := store.Users().FindUserByUsername(ctx, su.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := auth.HashPassword(su.password, bcryptCost)
		if err != nil {
			return err
		}
		u := &domain.User{ID: uuid.New(), Username: su.username, PasswordHash: hash, Role: su.role, FullName: su.fullName}
		if err := store.Users().InsertUser(ctx, u); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return err
		}
		log.Printf("Seeded user %s (%s)", su.username, su.role)
	}

	for _, sr := range seedRooms {
		_, err := store.Rooms().FindRoomByNumber(ctx, sr.Number)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoomNotFound) {
			return err
		}

		room := sr
		room.ID = uuid.New()
		room.Status = domain.RoomAvailable
		if err := store.Rooms().InsertRoom(ctx, &room); err != nil && !errors.Is(err, domain.ErrRoomExists) {
			return err
		}
		log.Printf("Seeded room %s (%s)", room.Number, room.Type)
	}

	return nil
}
