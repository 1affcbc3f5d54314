package queue

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatLine(t *testing.T) {
	ev := SurveySubmittedEvent{
		ResponseID:       12,
		EmployeeID:       3,
		CompanyID:        1,
		ResponseDate:     "2026-08-31",
		MoodLevel:        4,
		StressLevel:      2,
		FatigueLevel:     3,
		WorkSatisfaction: 5,
		SubmittedAt:      "2026-08-31T10:00:00Z",
	}
	line := formatLine(ev)

	if !strings.HasSuffix(line, "\n") {
		t.Error("line must end with a newline")
	}
	if strings.Count(line, "\n") != 1 {
		t.Error("event must render as exactly one line")
	}
	for _, want := range []string{
		"[2026-08-31T10:00:00Z]",
		"response_id=12",
		"employee_id=3",
		"company_id=1",
		"date=2026-08-31",
		"mood=4",
		"stress=2",
		"fatigue=3",
		"satisfaction=5",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}

func TestSurveySubmittedEventJSON(t *testing.T) {
	ev := SurveySubmittedEvent{ResponseID: 1, EmployeeID: 2, CompanyID: 3, ResponseDate: "2026-01-01"}
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Consumers in other languages rely on the snake_case field names.
	for _, key := range []string{"response_id", "employee_id", "company_id", "response_date", "mood_level", "work_satisfaction"} {
		if !strings.Contains(string(b), `"`+key+`"`) {
			t.Errorf("payload %s missing key %q", b, key)
		}
	}
}
