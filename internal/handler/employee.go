package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/metrics"
	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/queue"
	"github.com/vitaltrack/wellness-platform/internal/repository"
	queue_publisher "github.com/vitaltrack/wellness-platform/internal/service"
)

// EmployeeHandler bundles repositories for the employee namespace.
type EmployeeHandler struct {
	Employees *repository.EmployeeRepo
	Surveys   *repository.SurveyRepo
}

func NewEmployeeHandler(employees *repository.EmployeeRepo, surveys *repository.SurveyRepo) *EmployeeHandler {
	if employees == nil || surveys == nil {
		panic("nil repository passed to NewEmployeeHandler")
	}
	return &EmployeeHandler{Employees: employees, Surveys: surveys}
}

type employeeRegisterReq struct {
	CompanyID     uint64  `json:"companyId"`
	EmployeeName  string  `json:"employeeName"`
	EmployeeEmail string  `json:"employeeEmail"`
	Department    *string `json:"department"`
	Position      *string `json:"position"`
}

type surveyReq struct {
	MoodLevel        int     `json:"moodLevel"`
	StressLevel      int     `json:"stressLevel"`
	FatigueLevel     int     `json:"fatigueLevel"`
	WorkSatisfaction int     `json:"workSatisfaction"`
	Observations     *string `json:"observations"`
}

// validateRatings checks the four survey dimensions against the closed
// [1,5] range before anything is written.
func validateRatings(r surveyReq) bool {
	for _, v := range []int{r.MoodLevel, r.StressLevel, r.FatigueLevel, r.WorkSatisfaction} {
		if v < model.RatingMin || v > model.RatingMax {
			return false
		}
	}
	return true
}

// Register creates the caller's employee profile. The referenced company
// must exist; the profile insert and the user_type stamp happen in one
// repository transaction.
func (h *EmployeeHandler) Register(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var req employeeRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	if req.CompanyID == 0 || req.EmployeeName == "" || !validEmail(req.EmployeeEmail) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "companyId, employeeName and valid employeeEmail required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	employee := model.Employee{
		CompanyID:     req.CompanyID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: strings.ToLower(strings.TrimSpace(req.EmployeeEmail)),
		Department:    req.Department,
		Position:      req.Position,
	}
	if err := h.Employees.Register(ctx, u.ID, &employee); err != nil {
		switch err {
		case repository.ErrProfileExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "employee already registered for this user"})
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create employee failed"})
	}
	metrics.RegistrationsCounter.WithLabelValues(model.UserTypeEmployee).Inc()

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "employee": employee})
}

// Me returns the caller's employee profile.
func (h *EmployeeHandler) Me(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	employee, err := h.Employees.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, employee)
}

// SubmitSurvey records one wellness survey response for the caller, stamped
// with today's date. Submissions are append-only: nothing is deduplicated or
// overwritten, several same-day responses all persist. A survey.submitted
// event is published best-effort after the write.
func (h *EmployeeHandler) SubmitSurvey(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	var req surveyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validateRatings(req) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating levels must be integers between 1 and 5"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	employee, err := h.Employees.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	response := model.SurveyResponse{
		EmployeeID:       employee.ID,
		MoodLevel:        req.MoodLevel,
		StressLevel:      req.StressLevel,
		FatigueLevel:     req.FatigueLevel,
		WorkSatisfaction: req.WorkSatisfaction,
		Observations:     req.Observations,
	}
	if err := h.Surveys.Create(ctx, &response); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save survey failed"})
	}
	metrics.SurveysSubmittedCounter.Inc()

	// Publish outside the request lifetime; failures are logged by the
	// publisher and never fail the submission.
	event := queue.SurveySubmittedEvent{
		ResponseID:       response.ID,
		EmployeeID:       employee.ID,
		CompanyID:        employee.CompanyID,
		ResponseDate:     response.ResponseDate.Format("2006-01-02"),
		MoodLevel:        response.MoodLevel,
		StressLevel:      response.StressLevel,
		FatigueLevel:     response.FatigueLevel,
		WorkSatisfaction: response.WorkSatisfaction,
		SubmittedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishSurveySubmitted(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "response": response})
}

// SurveyHistory lists the caller's own responses, newest first.
func (h *EmployeeHandler) SurveyHistory(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	employee, err := h.Employees.GetByUserID(ctx, u.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	history, err := h.Surveys.ListByEmployee(ctx, employee.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, history)
}
