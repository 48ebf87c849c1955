package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"testament/internal/domain/entity"
	"testament/internal/domain/service"
	mockSvc "testament/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminContext(t *testing.T, claims *service.TokenClaims, routeApplicant string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("applicantId")
	c.SetParamValues(routeApplicant)
	if claims != nil {
		c.Set(tokenClaimsContextKey, claims)
	}

	return c, rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_ValidBearerToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	subject := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.TokenClaims{Subject: subject, Roles: entity.Roles{entity.RoleAdmin}}, nil)

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	require.NoError(t, m.Authenticate(okHandler(&called))(c))

	assert.True(t, called)

	claims, ok := TokenClaims(c)
	require.True(t, ok)
	assert.Equal(t, subject, claims.Subject)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	require.NoError(t, m.Authenticate(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearerScheme(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	require.NoError(t, m.Authenticate(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, assert.AnError)

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	require.NoError(t, m.Authenticate(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole_AdminPasses(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	claims := &service.TokenClaims{Subject: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	c, _ := newAdminContext(t, claims, uuid.NewString())

	called := false
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler(&called))(c))

	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole_NonAdminForbidden(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	claims := &service.TokenClaims{Subject: uuid.New(), Roles: entity.Roles{entity.RoleApplicant}}
	c, rec := newAdminContext(t, claims, uuid.NewString())

	called := false
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireSameApplicantOrAdmin_AdminAnyApplicant(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	claims := &service.TokenClaims{Subject: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	c, _ := newAdminContext(t, claims, uuid.NewString())

	called := false
	require.NoError(t, m.RequireSameApplicantOrAdmin(okHandler(&called))(c))

	assert.True(t, called)
}

func TestAuthMiddleware_RequireSameApplicantOrAdmin_SameApplicant(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	subject := uuid.New()
	claims := &service.TokenClaims{Subject: subject, Roles: entity.Roles{entity.RoleApplicant}}
	c, _ := newAdminContext(t, claims, subject.String())

	called := false
	require.NoError(t, m.RequireSameApplicantOrAdmin(okHandler(&called))(c))

	assert.True(t, called)
}

func TestAuthMiddleware_RequireSameApplicantOrAdmin_OtherApplicantForbidden(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	claims := &service.TokenClaims{Subject: uuid.New(), Roles: entity.Roles{entity.RoleApplicant}}
	c, rec := newAdminContext(t, claims, uuid.NewString())

	called := false
	require.NoError(t, m.RequireSameApplicantOrAdmin(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireSameApplicantOrAdmin_UnparseableRouteIsNotFound(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	claims := &service.TokenClaims{Subject: uuid.New(), Roles: entity.Roles{entity.RoleApplicant}}
	c, rec := newAdminContext(t, claims, "not-a-uuid")

	called := false
	require.NoError(t, m.RequireSameApplicantOrAdmin(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthMiddleware_RequireSameApplicantOrAdmin_MissingClaims(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAdminContext(t, nil, uuid.NewString())

	called := false
	require.NoError(t, m.RequireSameApplicantOrAdmin(okHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
