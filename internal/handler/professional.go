package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/repository"
)

// ProfessionalHandler bundles the health professional repository.
type ProfessionalHandler struct {
	Professionals *repository.ProfessionalRepo
}

func NewProfessionalHandler(p *repository.ProfessionalRepo) *ProfessionalHandler {
	if p == nil {
		panic("nil repository passed to NewProfessionalHandler")
	}
	return &ProfessionalHandler{Professionals: p}
}

type professionalRegisterReq struct {
	ProfessionalName   string  `json:"professionalName"`
	Specialty          string  `json:"specialty"`
	RegistrationNumber string  `json:"registrationNumber"`
	ContactEmail       string  `json:"contactEmail"`
	ContactPhone       *string `json:"contactPhone"`
	Bio                *string `json:"bio"`
}

// Register creates the caller's health professional profile. Profiles start
// unapproved and stay off the public directory until an admin approves them.
func (h *ProfessionalHandler) Register(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var req professionalRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ProfessionalName = strings.TrimSpace(req.ProfessionalName)
	req.Specialty = strings.TrimSpace(req.Specialty)
	req.RegistrationNumber = strings.TrimSpace(req.RegistrationNumber)
	if req.ProfessionalName == "" || req.Specialty == "" || req.RegistrationNumber == "" || !validEmail(req.ContactEmail) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "professionalName, specialty, registrationNumber and valid contactEmail required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	professional := model.HealthProfessional{
		ProfessionalName:   req.ProfessionalName,
		Specialty:          req.Specialty,
		RegistrationNumber: req.RegistrationNumber,
		ContactEmail:       strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone:       req.ContactPhone,
		Bio:                req.Bio,
	}
	if err := h.Professionals.Register(ctx, u.ID, &professional); err != nil {
		switch err {
		case repository.ErrProfileExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "professional already registered for this user"})
		case repository.ErrDuplicate:
			return c.JSON(http.StatusConflict, echo.Map{"error": "registration number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create professional failed"})
	}
	metrics.RegistrationsCounter.WithLabelValues(model.UserTypeProfessional).Inc()

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "professional": professional})
}

// ListApproved is the public professional directory. Only approved profiles
// ever appear here.
func (h *ProfessionalHandler) ListApproved(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	professionals, err := h.Professionals.ListApproved(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, professionals)
}
