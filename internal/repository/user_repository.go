package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/utils"
)

const userColumns = "id,open_id,name,email,password_hash,role,user_type,created_at,updated_at,last_signed_in"

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.OpenID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Role, &u.UserType, &u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn)
	return u, err
}

// Create inserts a password-login user and returns its ID. The role must be
// model.RoleUser or model.RoleAdmin.
func (r *UserRepo) Create(ctx context.Context, name, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)",
		name, email, hash, role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// UpdateUserType sets the cached profile type on the user row.
func (r *UserRepo) UpdateUserType(ctx context.Context, id uint64, userType string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET user_type=? WHERE id=?", userType, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM users WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// TouchLastSignedIn stamps the user's last login time.
func (r *UserRepo) TouchLastSignedIn(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET last_signed_in=NOW() WHERE id=?", id)
	return err
}

// GetAll returns every user row, newest first.
func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.OpenID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Role, &u.UserType, &u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Delete removes a user and the profile rows it owns inside a single
// transaction. Deleting a user whose company still has employees fails with
// ErrConflict: those employee rows belong to other users and removing the
// company would orphan them. Otherwise the cascade runs bottom-up: the
// employee's survey responses, the employee row, the (empty) company row,
// the health professional row, then the user itself.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE id=? LIMIT 1", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	var companyID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM companies WHERE user_id=? LIMIT 1", id).Scan(&companyID)
	switch {
	case err == sql.ErrNoRows:
		// no company owned
	case err != nil:
		return err
	default:
		var headcount int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM employees WHERE company_id=?", companyID).Scan(&headcount); err != nil {
			return err
		}
		if headcount > 0 {
			return ErrConflict
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM companies WHERE id=?", companyID); err != nil {
			return err
		}
	}

	var employeeID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM employees WHERE user_id=? LIMIT 1", id).Scan(&employeeID)
	switch {
	case err == sql.ErrNoRows:
		// no employee profile
	case err != nil:
		return err
	default:
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM survey_responses WHERE employee_id=?", employeeID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM employees WHERE id=?", employeeID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM health_professionals WHERE user_id=?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id=?", id); err != nil {
		return err
	}
	return tx.Commit()
}
