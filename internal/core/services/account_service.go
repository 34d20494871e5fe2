package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/platform/auth"
)

type CreateUserRequest struct {
	Username string
	Password string
	Role     string
	FullName string
}

// AccountService resolves callers to users. The booking engine itself never
// looks users up; this sits on the caller's side of the core.
type AccountService struct {
	users      ports.UserRepository
	tokens     *auth.TokenIssuer
	bcryptCost int
	timeout    time.Duration
}

func NewAccountService(users ports.UserRepository, tokens *auth.TokenIssuer, bcryptCost int, timeout time.Duration) *AccountService {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &AccountService{users: users, tokens: tokens, bcryptCost: bcryptCost, timeout: timeout}
}

func (s *AccountService) Login(ctx context.Context, username, password string) (auth.AccessToken, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return auth.AccessToken{}, nil, domain.ErrInvalidCredentials
		}
		return auth.AccessToken{}, nil, domain.StoreError("find user", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return auth.AccessToken{}, nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return auth.AccessToken{}, nil, fmt.Errorf("issue token: %w", err)
	}

	return tok, user, nil
}

func (s *AccountService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidUser)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		FullName:     strings.TrimSpace(req.FullName),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.users.InsertUser(ctx, user); err != nil {
		return nil, domain.StoreError("insert user", err)
	}

	return user, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, domain.StoreError("list users", err)
	}
	return users, nil
}
