package middleware

import (
	"strings"

	"testament/internal/delivery/http/response"
	"testament/internal/domain/entity"
	"testament/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// tokenClaimsContextKey is where decoded admin claims are stored on the Echo context.
const tokenClaimsContextKey = "tokenClaims"

// AuthMiddleware provides middleware for JWT authentication and authorization
// on the admin surface.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(tokenClaimsContextKey, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := TokenClaims(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !claims.Roles.Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// RequireSameApplicantOrAdmin allows the request through when the token's
// subject matches the :applicantId route parameter, or when the caller holds
// the admin role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireSameApplicantOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := TokenClaims(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity information missing")
		}

		if claims.Roles.Contains(entity.RoleAdmin) {
			return next(c)
		}

		applicantID, err := uuid.Parse(c.Param("applicantId"))
		if err != nil {
			return response.NotFound(c, "NOT_FOUND", "The requested record was not found")
		}
		if claims.Subject != applicantID {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}

		return next(c)
	}
}

// TokenClaims extracts the decoded admin claims from the context.
func TokenClaims(c echo.Context) (*service.TokenClaims, bool) {
	claims, ok := c.Get(tokenClaimsContextKey).(*service.TokenClaims)

	return claims, ok
}
