// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"testament/config"
	"testament/internal/domain/entity"
	"testament/internal/domain/service"
)

const defaultAccessTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing admin tokens.
	accessTTL    time.Duration // Time-to-live for admin tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    defaultAccessTTL,
	}, nil
}

// GenerateToken creates a signed bearer token carrying the subject and roles.
func (s *jwtService) GenerateToken(subject uuid.UUID, roles entity.Roles) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.accessTTL).Unix(),
		"roles": roles.ToStrings(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken parses and verifies a token string, returning its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return parseClaims(mapClaims)
}

func parseClaims(mapClaims jwt.MapClaims) (*service.TokenClaims, error) {
	subjectStr, err := mapClaims.GetSubject()
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	subject, err := uuid.Parse(subjectStr)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	claims := &service.TokenClaims{Subject: subject}

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, rawRole := range rawRoles {
			if role, ok := rawRole.(string); ok {
				claims.Roles = append(claims.Roles, entity.Role(role))
			}
		}
	}

	return claims, nil
}
