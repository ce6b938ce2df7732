package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aldayn/dayn_backend/internal/apperrors"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/dto"
	"github.com/aldayn/dayn_backend/internal/middleware"
	"github.com/aldayn/dayn_backend/internal/platform/config"
	"github.com/aldayn/dayn_backend/internal/utils"
)

// tokenService verifies the owner PIN and issues session JWTs. There is a
// single principal; no user records exist anywhere.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.AuthSvc {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the AuthSvc interface
var _ portssvc.AuthSvc = (*tokenService)(nil)

func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.OwnerPINHash == "" {
		return nil, fmt.Errorf("login is disabled: OWNER_PIN_HASH is not configured")
	}
	if !utils.CheckPINHash(req.PIN, s.cfg.OwnerPINHash) {
		s.LogInfo(ctx, "Login attempt with wrong PIN")
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   middleware.OwnerSubject,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Owner logged in")
	return &dto.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}
