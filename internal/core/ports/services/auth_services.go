package services

import (
	"context"

	"github.com/aldayn/dayn_backend/internal/dto"
)

// AuthSvc issues the owner session token. There is a single principal; this
// is access control for the one user, not a multi-user account system.
type AuthSvc interface {
	// Login verifies the owner PIN and returns a signed session token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
