package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleGuest Role = "guest"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	case RoleGuest:
		return RoleGuest, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
}
