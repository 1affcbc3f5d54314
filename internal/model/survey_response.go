package model

import "time"

// Rating bounds for the four survey dimensions.
const (
	RatingMin = 1
	RatingMax = 5
)

// SurveyResponse mirrors the `survey_responses` table. Rows are append-only:
// there is no update or delete path, and several submissions on the same day
// are all retained.
type SurveyResponse struct {
	ID               uint64    `json:"id"`
	EmployeeID       uint64    `json:"employeeId"`
	ResponseDate     time.Time `json:"responseDate"`
	MoodLevel        int       `json:"moodLevel"`
	StressLevel      int       `json:"stressLevel"`
	FatigueLevel     int       `json:"fatigueLevel"`
	WorkSatisfaction int       `json:"workSatisfaction"`
	Observations     *string   `json:"observations"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CompanySurveyResponse is a survey response joined with the employee's name
// and department for the company dashboard listing.
type CompanySurveyResponse struct {
	SurveyResponse
	EmployeeName string  `json:"employeeName"`
	Department   *string `json:"department"`
}

// WellnessStats aggregates survey responses for one company. The averages are
// nil when no rows matched; callers must treat that as "not enough data",
// never as numeric zero.
type WellnessStats struct {
	AvgMood         *float64 `json:"avgMood"`
	AvgStress       *float64 `json:"avgStress"`
	AvgFatigue      *float64 `json:"avgFatigue"`
	AvgSatisfaction *float64 `json:"avgSatisfaction"`
	TotalResponses  int64    `json:"totalResponses"`
}
