package repository

import (
	"context"
	"database/sql"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

const employeeColumns = "id,user_id,company_id,employee_name,employee_email,department,position,created_at,updated_at"

type EmployeeRepo struct{ DB *sql.DB }

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo { return &EmployeeRepo{DB: db} }

func scanEmployee(s interface {
	Scan(dest ...any) error
}) (model.Employee, error) {
	var e model.Employee
	err := s.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.EmployeeName, &e.EmployeeEmail,
		&e.Department, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Register creates an employee profile owned by userID and stamps the user's
// user_type inside the same transaction. The referenced company must exist
// (ErrNotFound otherwise) and the user must not already own an employee
// profile (ErrProfileExists).
func (r *EmployeeRepo) Register(ctx context.Context, userID uint64, e *model.Employee) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var existing uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM employees WHERE user_id=? LIMIT 1", userID).Scan(&existing)
	if err == nil {
		return ErrProfileExists
	}
	if err != sql.ErrNoRows {
		return err
	}

	var companyExists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM companies WHERE id=? LIMIT 1", e.CompanyID).Scan(&companyExists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO employees (user_id, company_id, employee_name, employee_email, department, position) VALUES (?,?,?,?,?,?)",
		userID, e.CompanyID, e.EmployeeName, e.EmployeeEmail, e.Department, e.Position)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrProfileExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	e.UserID = userID

	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET user_type=? WHERE id=?", model.UserTypeEmployee, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByUserID fetches the employee profile owned by a user.
func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID uint64) (model.Employee, error) {
	e, err := scanEmployee(r.DB.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE user_id=? LIMIT 1", userID))
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	return e, err
}

// ListByCompany returns a company's employees, newest first.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID uint64) ([]model.Employee, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE company_id=? ORDER BY created_at DESC", companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
