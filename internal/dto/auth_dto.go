package dto

import "github.com/aeroclub-norte/turnero-api/internal/models"

// LoginRequest carries the credentials posted to the login endpoint. Both
// fields are required and trimmed before validation.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the signed session token and the resolved identity.
type LoginResponse struct {
	Token string                 `json:"token"`
	User  models.SessionIdentity `json:"user"`
}
