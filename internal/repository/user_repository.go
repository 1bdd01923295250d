package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = $1`

	var user domain.User
	var role string
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	user.Role = domain.Role(role)
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE email = $1`

	var user domain.User
	var role string
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	user.Role = domain.Role(role)
	return &user, nil
}

func (r *UserRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	user.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	return nil
}

// Delete removes the user and everything that hangs off it in one
// transaction: applications, the employer record with its jobs and their
// applications, and the profile.
func (r *UserRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM applications WHERE user_id = $1`,
		`DELETE FROM applications WHERE job_id IN (
			SELECT j.id FROM jobs j
			JOIN employers e ON j.employer_id = e.id
			WHERE e.user_id = $1
		)`,
		`DELETE FROM jobs WHERE employer_id IN (SELECT id FROM employers WHERE user_id = $1)`,
		`DELETE FROM employers WHERE user_id = $1`,
		`DELETE FROM profiles WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, id); err != nil {
			r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
			return fmt.Errorf("kullanıcı silinemedi: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return nil
}
