package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type EmployerRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewEmployerRepository(db *sql.DB, logger logger.Logger) domain.EmployerRepository {
	return &EmployerRepository{
		db:     db,
		logger: logger,
	}
}

const employerColumns = `id, user_id, name, email, company_name, contact_person, password_hash, created_at`

func (r *EmployerRepository) scanEmployer(row *sql.Row) (*domain.Employer, error) {
	var employer domain.Employer
	err := row.Scan(
		&employer.ID,
		&employer.UserID,
		&employer.Name,
		&employer.Email,
		&employer.CompanyName,
		&employer.ContactPerson,
		&employer.PasswordHash,
		&employer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepository) FindByID(id int64) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`

	employer, err := r.scanEmployer(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İşveren ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("işveren bulunamadı: %w", err)
	}

	return employer, nil
}

func (r *EmployerRepository) FindByUserID(userID int64) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE user_id = $1`

	employer, err := r.scanEmployer(r.db.QueryRow(query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İşveren kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, fmt.Errorf("işveren bulunamadı: %w", err)
	}

	return employer, nil
}

func (r *EmployerRepository) FindByEmail(email string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE email = $1`

	employer, err := r.scanEmployer(r.db.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İşveren e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("işveren bulunamadı: %w", err)
	}

	return employer, nil
}

func (r *EmployerRepository) FindByName(name string) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE name = $1`

	employer, err := r.scanEmployer(r.db.QueryRow(query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İşveren adına göre bulunamadı", map[string]interface{}{"name": name, "error": err.Error()})
		return nil, fmt.Errorf("işveren bulunamadı: %w", err)
	}

	return employer, nil
}

func (r *EmployerRepository) FindAll() ([]*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("İşverenler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("işverenler listelenemedi: %w", err)
	}
	defer rows.Close()

	employers := make([]*domain.Employer, 0)
	for rows.Next() {
		var employer domain.Employer
		err := rows.Scan(
			&employer.ID,
			&employer.UserID,
			&employer.Name,
			&employer.Email,
			&employer.CompanyName,
			&employer.ContactPerson,
			&employer.PasswordHash,
			&employer.CreatedAt,
		)
		if err != nil {
			r.logger.Error("İşveren verileri okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("işveren verileri okunamadı: %w", err)
		}
		employers = append(employers, &employer)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Satır döngüsü sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("işveren verileri okunamadı: %w", err)
	}

	return employers, nil
}

func (r *EmployerRepository) Create(employer *domain.Employer) error {
	query := `
		INSERT INTO employers (user_id, name, email, company_name, contact_person, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	employer.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		employer.UserID,
		employer.Name,
		employer.Email,
		employer.CompanyName,
		employer.ContactPerson,
		employer.PasswordHash,
		employer.CreatedAt,
	).Scan(&employer.ID)

	if err != nil {
		r.logger.Error("İşveren oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("işveren oluşturulamadı: %w", err)
	}

	return nil
}

func (r *EmployerRepository) Update(employer *domain.Employer) error {
	query := `
		UPDATE employers
		SET name = $1, email = $2, company_name = $3, contact_person = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(
		query,
		employer.Name,
		employer.Email,
		employer.CompanyName,
		employer.ContactPerson,
		employer.ID,
	)

	if err != nil {
		r.logger.Error("İşveren güncellenemedi", map[string]interface{}{"id": employer.ID, "error": err.Error()})
		return fmt.Errorf("işveren güncellenemedi: %w", err)
	}

	return nil
}

// Delete removes the employer, its jobs and the applications on those jobs
// in one transaction.
func (r *EmployerRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("işveren silinemedi: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE employer_id = $1)`,
		`DELETE FROM jobs WHERE employer_id = $1`,
		`DELETE FROM employers WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, id); err != nil {
			r.logger.Error("İşveren silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
			return fmt.Errorf("işveren silinemedi: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("işveren silinemedi: %w", err)
	}

	return nil
}
