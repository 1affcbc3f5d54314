package repository

import (
	"context"
	"database/sql"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

const professionalColumns = "id,user_id,professional_name,specialty,registration_number,contact_email,contact_phone,bio,approved,created_at,updated_at"

type ProfessionalRepo struct{ DB *sql.DB }

func NewProfessionalRepo(db *sql.DB) *ProfessionalRepo { return &ProfessionalRepo{DB: db} }

func scanProfessional(s interface {
	Scan(dest ...any) error
}) (model.HealthProfessional, error) {
	var p model.HealthProfessional
	err := s.Scan(&p.ID, &p.UserID, &p.ProfessionalName, &p.Specialty, &p.RegistrationNumber,
		&p.ContactEmail, &p.ContactPhone, &p.Bio, &p.Approved, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Register creates a health professional profile owned by userID and stamps
// the user's user_type inside the same transaction. Returns ErrProfileExists
// when the user already owns one and ErrDuplicate when the registration
// number is taken.
func (r *ProfessionalRepo) Register(ctx context.Context, userID uint64, p *model.HealthProfessional) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var existing uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM health_professionals WHERE user_id=? LIMIT 1", userID).Scan(&existing)
	if err == nil {
		return ErrProfileExists
	}
	if err != sql.ErrNoRows {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO health_professionals (user_id, professional_name, specialty, registration_number, contact_email, contact_phone, bio) VALUES (?,?,?,?,?,?,?)",
		userID, p.ProfessionalName, p.Specialty, p.RegistrationNumber, p.ContactEmail, p.ContactPhone, p.Bio)
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
	p.ID = uint64(id)
	p.UserID = userID

	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET user_type=? WHERE id=?", model.UserTypeProfessional, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// ListApproved returns publicly listable professionals, newest first.
func (r *ProfessionalRepo) ListApproved(ctx context.Context) ([]model.HealthProfessional, error) {
	return r.list(ctx, "SELECT "+professionalColumns+" FROM health_professionals WHERE approved=1 ORDER BY created_at DESC")
}

// ListPending returns professionals awaiting admin approval, newest first.
func (r *ProfessionalRepo) ListPending(ctx context.Context) ([]model.HealthProfessional, error) {
	return r.list(ctx, "SELECT "+professionalColumns+" FROM health_professionals WHERE approved=0 ORDER BY created_at DESC")
}

func (r *ProfessionalRepo) list(ctx context.Context, query string) ([]model.HealthProfessional, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HealthProfessional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Approve flips the one-way approved flag, idempotently. A missing
// professional returns ErrNotFound.
func (r *ProfessionalRepo) Approve(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE health_professionals SET approved=1 WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM health_professionals WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}
