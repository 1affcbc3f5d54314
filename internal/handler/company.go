package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/repository"
)

// CompanyHandler bundles repositories for the company namespace.
type CompanyHandler struct {
	Companies *repository.CompanyRepo
	Employees *repository.EmployeeRepo
	Surveys   *repository.SurveyRepo
}

func NewCompanyHandler(companies *repository.CompanyRepo, employees *repository.EmployeeRepo, surveys *repository.SurveyRepo) *CompanyHandler {
	if companies == nil || employees == nil || surveys == nil {
		panic("nil repository passed to NewCompanyHandler")
	}
	return &CompanyHandler{Companies: companies, Employees: employees, Surveys: surveys}
}

type companyRegisterReq struct {
	CompanyName  string  `json:"companyName"`
	CNPJ         string  `json:"cnpj"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	PlanID       *uint64 `json:"planId"`
}

// Register creates the caller's company profile. The profile insert and the
// user_type stamp happen in one repository transaction. The second attempt
// by the same user always fails with 409.
func (h *CompanyHandler) Register(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var req companyRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.CNPJ = strings.TrimSpace(req.CNPJ)
	if req.CompanyName == "" || !validEmail(req.ContactEmail) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "companyName and valid contactEmail required"})
	}
	// CNPJ with or without punctuation: 14 bare digits up to 18 formatted chars.
	if len(req.CNPJ) < 14 || len(req.CNPJ) > 18 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cnpj must be 14-18 characters"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	company := model.Company{
		CompanyName:  req.CompanyName,
		CNPJ:         req.CNPJ,
		ContactEmail: strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone: req.ContactPhone,
		PlanID:       req.PlanID,
	}
	if err := h.Companies.Register(ctx, u.ID, &company); err != nil {
		switch err {
		case repository.ErrProfileExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "company already registered for this user"})
		case repository.ErrDuplicate:
			return c.JSON(http.StatusConflict, echo.Map{"error": "cnpj already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create company failed"})
	}
	metrics.RegistrationsCounter.WithLabelValues(model.UserTypeCompany).Inc()

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "company": company})
}

// Me returns the caller's company profile.
func (h *CompanyHandler) Me(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	company, err := h.Companies.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, company)
}

// GetEmployees lists the caller's company employees.
func (h *CompanyHandler) GetEmployees(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	company, err := h.Companies.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	employees, err := h.Employees.ListByCompany(ctx, company.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, employees)
}

// WellnessStats aggregates the company's survey responses over an optional
// inclusive date range (?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD). When
// no responses match, the averages come back null, not zero.
func (h *CompanyHandler) WellnessStats(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	company, err := h.Companies.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	stats, err := h.Surveys.Stats(ctx, company.ID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, stats)
}

// SurveyResponses lists every response from the company's employees joined
// with the employee name and department.
func (h *CompanyHandler) SurveyResponses(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	company, err := h.Companies.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	responses, err := h.Surveys.ListByCompany(ctx, company.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, responses)
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. The boolean
// is false only when the parameter is present but malformed.
func parseDateParam(c echo.Context, name string) (*time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
