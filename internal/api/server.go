package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/org-directory-api/internal/middleware"
)

type Server struct {
	tenant     *TenantHandler
	org        *OrganizationHandler
	employee   *EmployeeHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	tenantService TenantService,
	orgService OrganizationService,
	employeeService EmployeeService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		tenant:     NewTenantHandler(tenantService),
		org:        NewOrganizationHandler(orgService),
		employee:   NewEmployeeHandler(employeeService),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit())

	{
		// Tenant management is administrative; these routes always run
		// under the unrestricted scope.
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.auth.RequireRole(middleware.RoleAdmin))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		orgs := api.Group("/organizations", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			orgs.POST("", s.org.CreateOrganization)
			orgs.GET("", s.org.ListOrganizations)
			orgs.GET("/:id", s.org.GetOrganization)
			orgs.DELETE("/:id", s.org.DeleteOrganization)
		}

		employees := api.Group("/employees", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			employees.POST("", s.employee.CreateEmployee)
			employees.GET("", s.employee.ListEmployees)
			employees.GET("/:id", s.employee.GetEmployee)
			employees.DELETE("/:id", s.employee.DeleteEmployee)
		}
	}
}
