package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

type SurveyRepo struct{ DB *sql.DB }

func NewSurveyRepo(db *sql.DB) *SurveyRepo { return &SurveyRepo{DB: db} }

// Create appends one survey response stamped with today's UTC date. There is
// deliberately no upsert: several submissions on the same day all persist.
func (r *SurveyRepo) Create(ctx context.Context, s *model.SurveyResponse) error {
	s.ResponseDate = time.Now().UTC().Truncate(24 * time.Hour)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO survey_responses (employee_id, response_date, mood_level, stress_level, fatigue_level, work_satisfaction, observations) VALUES (?,?,?,?,?,?,?)",
		s.EmployeeID, s.ResponseDate, s.MoodLevel, s.StressLevel, s.FatigueLevel, s.WorkSatisfaction, s.Observations)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListByEmployee returns one employee's responses, newest first.
func (r *SurveyRepo) ListByEmployee(ctx context.Context, employeeID uint64) ([]model.SurveyResponse, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,employee_id,response_date,mood_level,stress_level,fatigue_level,work_satisfaction,observations,created_at
		 FROM survey_responses WHERE employee_id=? ORDER BY response_date DESC, id DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SurveyResponse
	for rows.Next() {
		var s model.SurveyResponse
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.ResponseDate, &s.MoodLevel, &s.StressLevel,
			&s.FatigueLevel, &s.WorkSatisfaction, &s.Observations, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListByCompany returns every response from a company's employees joined
// with the employee's name and department, newest first.
func (r *SurveyRepo) ListByCompany(ctx context.Context, companyID uint64) ([]model.CompanySurveyResponse, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT sr.id,sr.employee_id,sr.response_date,sr.mood_level,sr.stress_level,sr.fatigue_level,sr.work_satisfaction,sr.observations,sr.created_at,
		        e.employee_name,e.department
		 FROM survey_responses sr
		 INNER JOIN employees e ON sr.employee_id = e.id
		 WHERE e.company_id=?
		 ORDER BY sr.response_date DESC, sr.id DESC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CompanySurveyResponse
	for rows.Next() {
		var s model.CompanySurveyResponse
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.ResponseDate, &s.MoodLevel, &s.StressLevel,
			&s.FatigueLevel, &s.WorkSatisfaction, &s.Observations, &s.CreatedAt,
			&s.EmployeeName, &s.Department); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Stats aggregates average mood/stress/fatigue/satisfaction and the total
// response count across a company's employees, bounded by the optional
// inclusive date range. With no matching rows the averages come back NULL
// from MySQL and stay nil on the struct; the count is zero.
func (r *SurveyRepo) Stats(ctx context.Context, companyID uint64, start, end *time.Time) (model.WellnessStats, error) {
	query := `SELECT AVG(sr.mood_level), AVG(sr.stress_level), AVG(sr.fatigue_level), AVG(sr.work_satisfaction), COUNT(*)
	 FROM survey_responses sr
	 INNER JOIN employees e ON sr.employee_id = e.id
	 WHERE e.company_id=?`
	args := []any{companyID}
	if start != nil {
		query += " AND sr.response_date >= ?"
		args = append(args, *start)
	}
	if end != nil {
		query += " AND sr.response_date <= ?"
		args = append(args, *end)
	}

	var (
		mood, stress, fatigue, satisfaction sql.NullFloat64
		stats                               model.WellnessStats
	)
	err := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&mood, &stress, &fatigue, &satisfaction, &stats.TotalResponses)
	if err != nil {
		return model.WellnessStats{}, err
	}
	stats.AvgMood = nullableFloat(mood)
	stats.AvgStress = nullableFloat(stress)
	stats.AvgFatigue = nullableFloat(fatigue)
	stats.AvgSatisfaction = nullableFloat(satisfaction)
	return stats, nil
}

// nullableFloat converts a NULL aggregate into an absent pointer so callers
// can tell "no data" apart from a real zero.
func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
