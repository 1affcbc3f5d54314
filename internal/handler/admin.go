package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/repository"
)

// AdminHandler groups the admin-only management endpoints: user listing and
// deletion, company and professional approval queues.
type AdminHandler struct {
	Users         *repository.UserRepo
	Companies     *repository.CompanyRepo
	Professionals *repository.ProfessionalRepo
}

func NewAdminHandler(users *repository.UserRepo, companies *repository.CompanyRepo, professionals *repository.ProfessionalRepo) *AdminHandler {
	if users == nil || companies == nil || professionals == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Users: users, Companies: companies, Professionals: professionals}
}

// GetAllUsers lists every account. Password hashes never serialize.
func (h *AdminHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Users.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes an account and its owned profile rows. A user whose
// company still employs people cannot be deleted until those employees are
// reassigned or removed.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "company still has employees"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetAllCompanies lists every company, approved or not.
func (h *AdminHandler) GetAllCompanies(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	companies, err := h.Companies.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, companies)
}

// GetPendingCompanies lists the company approval queue.
func (h *AdminHandler) GetPendingCompanies(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	companies, err := h.Companies.GetPending(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, companies)
}

// ApproveCompany flips the one-way approved flag. Re-approving is a no-op
// that still answers 200.
func (h *AdminHandler) ApproveCompany(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Companies.Approve(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "approve company failed"})
	}
	metrics.ApprovalsCounter.WithLabelValues("company").Inc()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetPendingProfessionals lists the professional approval queue.
func (h *AdminHandler) GetPendingProfessionals(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	professionals, err := h.Professionals.ListPending(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, professionals)
}

// ApproveProfessional flips the one-way approved flag and makes the profile
// publicly listed.
func (h *AdminHandler) ApproveProfessional(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Professionals.Approve(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "professional not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "approve professional failed"})
	}
	metrics.ApprovalsCounter.WithLabelValues("professional").Inc()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
