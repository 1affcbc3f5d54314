// Package queue defines message payloads exchanged over the message broker.
package queue

// SurveySubmittedEvent is published when an employee records a wellness
// survey response. It contains enough information for downstream consumers
// to log, notify, or feed analytics without querying the primary database.
type SurveySubmittedEvent struct {
	ResponseID       uint64 `json:"response_id"`
	EmployeeID       uint64 `json:"employee_id"`
	CompanyID        uint64 `json:"company_id"`
	ResponseDate     string `json:"response_date"`
	MoodLevel        int    `json:"mood_level"`
	StressLevel      int    `json:"stress_level"`
	FatigueLevel     int    `json:"fatigue_level"`
	WorkSatisfaction int    `json:"work_satisfaction"`
	SubmittedAt      string `json:"submitted_at"`
}
