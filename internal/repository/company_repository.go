package repository

import (
	"context"
	"database/sql"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

const companyColumns = "id,user_id,company_name,cnpj,contact_email,contact_phone,plan_id,approved,created_at,updated_at"

type CompanyRepo struct{ DB *sql.DB }

func NewCompanyRepo(db *sql.DB) *CompanyRepo { return &CompanyRepo{DB: db} }

func scanCompany(s interface {
	Scan(dest ...any) error
}) (model.Company, error) {
	var c model.Company
	err := s.Scan(&c.ID, &c.UserID, &c.CompanyName, &c.CNPJ, &c.ContactEmail,
		&c.ContactPhone, &c.PlanID, &c.Approved, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Register creates a company profile owned by userID and stamps the owning
// user's user_type inside the same transaction, so a crash can never leave
// a profile row without the matching cache value. Returns ErrProfileExists
// when the user already owns a company and ErrDuplicate when the cnpj is
// taken.
func (r *CompanyRepo) Register(ctx context.Context, userID uint64, c *model.Company) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var existing uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM companies WHERE user_id=? LIMIT 1", userID).Scan(&existing)
	if err == nil {
		return ErrProfileExists
	}
	if err != sql.ErrNoRows {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO companies (user_id, company_name, cnpj, contact_email, contact_phone, plan_id) VALUES (?,?,?,?,?,?)",
		userID, c.CompanyName, c.CNPJ, c.ContactEmail, c.ContactPhone, c.PlanID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	c.UserID = userID

	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET user_type=? WHERE id=?", model.UserTypeCompany, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByUserID fetches the company owned by a user.
func (r *CompanyRepo) GetByUserID(ctx context.Context, userID uint64) (model.Company, error) {
	c, err := scanCompany(r.DB.QueryRowContext(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE user_id=? LIMIT 1", userID))
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// GetByID fetches a company by id.
func (r *CompanyRepo) GetByID(ctx context.Context, id uint64) (model.Company, error) {
	c, err := scanCompany(r.DB.QueryRowContext(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// GetAll returns every company, newest first.
func (r *CompanyRepo) GetAll(ctx context.Context) ([]model.Company, error) {
	return r.list(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY created_at DESC")
}

// GetPending returns companies awaiting admin approval, newest first.
func (r *CompanyRepo) GetPending(ctx context.Context) ([]model.Company, error) {
	return r.list(ctx, "SELECT "+companyColumns+" FROM companies WHERE approved=0 ORDER BY created_at DESC")
}

func (r *CompanyRepo) list(ctx context.Context, query string) ([]model.Company, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Approve flips the one-way approved flag. Approving an already-approved
// company is a no-op; a missing company returns ErrNotFound.
func (r *CompanyRepo) Approve(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE companies SET approved=1 WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM companies WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}
