// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"testament/internal/delivery/http/middleware"
	"testament/internal/delivery/http/router/handler"
	"testament/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler    *handler.RegistrationHandler
	PersonalDetailsHandler *handler.PersonalDetailsHandler
	IdentificationHandler  *handler.IdentificationHandler
	BeneficiaryHandler     *handler.BeneficiaryHandler
	AssetHandler           *handler.AssetHandler
	AllocationHandler      *handler.AllocationHandler
	ExecutorHandler        *handler.ExecutorHandler
	GuardianHandler        *handler.GuardianHandler
	PaymentHandler         *handler.PaymentHandler
	AdminHandler           *handler.AdminHandler
	KeyAuthMiddleware      *middleware.KeyAuthMiddleware
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public registration routes; no credential required.
	registrationGroup := e.Group("/api/registration")
	{
		registrationGroup.POST("/start", r.params.RegistrationHandler.Start)
		registrationGroup.POST("/resend-key", r.params.RegistrationHandler.ResendKey)
		registrationGroup.POST("/sponsored/email", r.params.RegistrationHandler.SubmitSponsoredEmail)
		registrationGroup.POST("/sponsored/verify", r.params.RegistrationHandler.VerifySponsoredOTP)
	}

	// Session routes authenticated by the X-Registration-Key header.
	sessionGroup := e.Group("/api/registration")
	sessionGroup.Use(r.params.KeyAuthMiddleware.Authenticate)
	{
		sessionGroup.GET("/summary", r.params.RegistrationHandler.Summary)
		sessionGroup.GET("/resume-qr", r.params.RegistrationHandler.ResumeQR)

		r.registerEntityRoutes(sessionGroup)
	}

	// Admin routes authenticated by bearer token. Reads and writes are open to
	// the admin role or the applicant named in the path; deletion is admin-only.
	adminGroup := e.Group("/api/admin/applicants/:applicantId")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireSameApplicantOrAdmin)
	{
		adminGroup.POST("/key", r.params.AdminHandler.IssueKey)
		adminGroup.GET("/summary", r.params.AdminHandler.Summary)
		adminGroup.DELETE("", r.params.AdminHandler.DeleteApplicant,
			r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))

		r.registerEntityRoutes(adminGroup)
	}
}

// registerEntityRoutes wires the per-entity CRUD surface onto a group. The
// same handlers back both the keyed session surface and the admin surface;
// the applicant is resolved from the session or the route respectively.
func (r *router) registerEntityRoutes(g *echo.Group) {
	detailsGroup := g.Group("/personal-details")
	{
		detailsGroup.POST("", r.params.PersonalDetailsHandler.Add)
		detailsGroup.GET("", r.params.PersonalDetailsHandler.Get)
		detailsGroup.PUT("/:id", r.params.PersonalDetailsHandler.Update)
		detailsGroup.DELETE("/:id", r.params.PersonalDetailsHandler.Delete)
	}

	identificationGroup := g.Group("/identifications")
	{
		identificationGroup.POST("", r.params.IdentificationHandler.Add)
		identificationGroup.GET("", r.params.IdentificationHandler.List)
		identificationGroup.GET("/:id", r.params.IdentificationHandler.Get)
		identificationGroup.PUT("/:id", r.params.IdentificationHandler.Update)
		identificationGroup.DELETE("/:id", r.params.IdentificationHandler.Delete)
	}

	beneficiaryGroup := g.Group("/beneficiaries")
	{
		beneficiaryGroup.POST("", r.params.BeneficiaryHandler.Add)
		beneficiaryGroup.GET("", r.params.BeneficiaryHandler.List)
		beneficiaryGroup.GET("/:id", r.params.BeneficiaryHandler.Get)
		beneficiaryGroup.PUT("/:id", r.params.BeneficiaryHandler.Update)
		beneficiaryGroup.DELETE("/:id", r.params.BeneficiaryHandler.Delete)
	}

	assetGroup := g.Group("/assets")
	{
		assetGroup.POST("", r.params.AssetHandler.Add)
		assetGroup.GET("", r.params.AssetHandler.List)
		assetGroup.GET("/:id", r.params.AssetHandler.Get)
		assetGroup.PUT("/:id", r.params.AssetHandler.Update)
		assetGroup.DELETE("/:id", r.params.AssetHandler.Delete)
	}

	allocationGroup := g.Group("/allocations")
	{
		allocationGroup.POST("", r.params.AllocationHandler.Add)
		allocationGroup.GET("", r.params.AllocationHandler.List)
		allocationGroup.GET("/:id", r.params.AllocationHandler.Get)
		allocationGroup.PUT("/:id", r.params.AllocationHandler.Update)
		allocationGroup.DELETE("/:id", r.params.AllocationHandler.Delete)
	}

	executorGroup := g.Group("/executors")
	{
		executorGroup.POST("", r.params.ExecutorHandler.Add)
		executorGroup.GET("", r.params.ExecutorHandler.List)
		executorGroup.GET("/:id", r.params.ExecutorHandler.Get)
		executorGroup.PUT("/:id", r.params.ExecutorHandler.Update)
		executorGroup.DELETE("/:id", r.params.ExecutorHandler.Delete)
	}

	guardianGroup := g.Group("/guardians")
	{
		guardianGroup.POST("", r.params.GuardianHandler.Add)
		guardianGroup.GET("", r.params.GuardianHandler.List)
		guardianGroup.GET("/:id", r.params.GuardianHandler.Get)
		guardianGroup.PUT("/:id", r.params.GuardianHandler.Update)
		guardianGroup.DELETE("/:id", r.params.GuardianHandler.Delete)
	}

	paymentGroup := g.Group("/payments")
	{
		paymentGroup.POST("", r.params.PaymentHandler.Capture)
		paymentGroup.GET("", r.params.PaymentHandler.List)
		paymentGroup.GET("/:id", r.params.PaymentHandler.Get)
	}
}
