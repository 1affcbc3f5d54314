package repository

import (
	"context"
	"database/sql"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

const planColumns = "id,plan_name,plan_type,price,billing_period,max_employees,features,active,created_at,updated_at"

type PlanRepo struct{ DB *sql.DB }

func NewPlanRepo(db *sql.DB) *PlanRepo { return &PlanRepo{DB: db} }

// Create inserts a subscription plan.
func (r *PlanRepo) Create(ctx context.Context, p *model.Plan) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO plans (plan_name, plan_type, price, billing_period, max_employees, features) VALUES (?,?,?,?,?,?)",
		p.PlanName, p.PlanType, p.Price, p.BillingPeriod, p.MaxEmployees, p.Features)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	p.Active = true
	return nil
}

// ListActive returns active plans ordered by price ascending.
func (r *PlanRepo) ListActive(ctx context.Context) ([]model.Plan, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+planColumns+" FROM plans WHERE active=1 ORDER BY price")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Plan
	for rows.Next() {
		var p model.Plan
		if err := rows.Scan(&p.ID, &p.PlanName, &p.PlanType, &p.Price, &p.BillingPeriod,
			&p.MaxEmployees, &p.Features, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
