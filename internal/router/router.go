package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/vitaltrack/wellness-platform/internal/config"
	"github.com/vitaltrack/wellness-platform/internal/handler"
	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/middleware"
	"github.com/vitaltrack/wellness-platform/internal/model"
)

// Handlers collects every handler the router wires up.
type Handlers struct {
	Auth         *handler.AuthHandler
	Company      *handler.CompanyHandler
	Employee     *handler.EmployeeHandler
	Professional *handler.ProfessionalHandler
	Content      *handler.ContentHandler
	Plan         *handler.PlanHandler
	Admin        *handler.AdminHandler
}

// Register wires the whole route table. Every route carries exactly one
// access gate: public, authenticated, company, employee or admin. The gates
// compose as group middleware so this file doubles as the authorization
// policy table for the API.
func Register(e *echo.Echo, h Handlers, jwtSecret string, lookup middleware.UserLookup, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", metrics.HandlerFunc())

	// Public auth surface: no session required.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register-admin", h.Auth.RegisterAdmin)
	auth.POST("/login-admin", h.Auth.LoginAdmin)
	auth.POST("/logout", h.Auth.Logout)

	// Public catalog reads sit behind the response cache: they are identical
	// for every caller, so a shared cached copy is safe.
	cached := e.Group("/v1", middleware.NewRedisCache(cacheCfg, rdb))
	cached.GET("/professionals", h.Professional.ListApproved)
	cached.GET("/contents", h.Content.GetPublished)
	cached.GET("/plans", h.Plan.GetAll)

	// Everything below requires a valid session.
	session := middleware.SessionAuth(jwtSecret, lookup)

	authed := e.Group("/v1", session)
	authed.GET("/auth/me", h.Auth.Me)
	authed.POST("/auth/user-type", h.Auth.UpdateUserType)

	// Registration endpoints only require a session: the caller acquires the
	// profile type by registering, so there is no type to gate on yet.
	authed.POST("/company/register", h.Company.Register)
	authed.POST("/employee/register", h.Employee.Register)
	authed.POST("/professional/register", h.Professional.Register)

	company := e.Group("/v1/company", session, middleware.RequireUserType(model.UserTypeCompany))
	company.GET("/me", h.Company.Me)
	company.GET("/employees", h.Company.GetEmployees)
	company.GET("/wellness-stats", h.Company.WellnessStats)
	company.GET("/survey-responses", h.Company.SurveyResponses)

	employee := e.Group("/v1/employee", session, middleware.RequireUserType(model.UserTypeEmployee))
	employee.GET("/me", h.Employee.Me)
	employee.POST("/surveys", h.Employee.SubmitSurvey)
	employee.GET("/surveys", h.Employee.SurveyHistory)

	admin := e.Group("/v1/admin", session, middleware.RequireAdmin())
	admin.GET("/users", h.Admin.GetAllUsers)
	admin.DELETE("/users/:id", h.Admin.DeleteUser)
	admin.GET("/companies", h.Admin.GetAllCompanies)
	admin.GET("/companies/pending", h.Admin.GetPendingCompanies)
	admin.POST("/companies/:id/approve", h.Admin.ApproveCompany)
	admin.GET("/professionals/pending", h.Admin.GetPendingProfessionals)
	admin.POST("/professionals/:id/approve", h.Admin.ApproveProfessional)
	admin.GET("/contents", h.Content.GetAll)
	admin.POST("/contents", h.Content.Create)
	admin.PATCH("/contents/:id", h.Content.Update)
	admin.DELETE("/contents/:id", h.Content.Delete)
	admin.POST("/plans", h.Plan.Create)
}
