package service

import (
	"testament/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the decoded identity carried by an admin bearer token.
type TokenClaims struct {
	Subject uuid.UUID
	Roles   entity.Roles
}

// TokenService issues and validates bearer tokens for the admin surface.
type TokenService interface {
	GenerateToken(subject uuid.UUID, roles entity.Roles) (string, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
}
