package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/repository"
)

// PlanHandler serves the subscription plan catalog.
type PlanHandler struct {
	Plans *repository.PlanRepo
}

func NewPlanHandler(plans *repository.PlanRepo) *PlanHandler {
	if plans == nil {
		panic("nil repository passed to NewPlanHandler")
	}
	return &PlanHandler{Plans: plans}
}

type planCreateReq struct {
	PlanName      string  `json:"planName"`
	PlanType      string  `json:"planType"`
	Price         int64   `json:"price"`
	BillingPeriod string  `json:"billingPeriod"`
	MaxEmployees  *int64  `json:"maxEmployees"`
	Features      *string `json:"features"`
}

// GetAll lists active plans, cheapest first. Public.
func (h *PlanHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	plans, err := h.Plans.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, plans)
}

// Create adds a plan to the catalog. Admin only. Price is in cents.
func (h *PlanHandler) Create(c echo.Context) error {
	var req planCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.PlanName = strings.TrimSpace(req.PlanName)
	if req.PlanName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "planName required"})
	}
	if !model.PlanTypes[req.PlanType] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid planType"})
	}
	if !model.BillingPeriods[req.BillingPeriod] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid billingPeriod"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}
	if req.MaxEmployees != nil && *req.MaxEmployees <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "maxEmployees must be positive"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	plan := model.Plan{
		PlanName:      req.PlanName,
		PlanType:      req.PlanType,
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
		MaxEmployees:  req.MaxEmployees,
		Features:      req.Features,
	}
	if err := h.Plans.Create(ctx, &plan); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create plan failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "plan": plan})
}
