package dto

import "time"

// LoginRequest carries the owner's access PIN.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
