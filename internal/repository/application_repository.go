package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type ApplicationRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewApplicationRepository(db *sql.DB, logger logger.Logger) domain.ApplicationRepository {
	return &ApplicationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ApplicationRepository) FindByID(id int64) (*domain.Application, error) {
	query := `SELECT id, user_id, job_id, status, created_at FROM applications WHERE id = $1`

	var application domain.Application
	var status string
	err := r.db.QueryRow(query, id).Scan(
		&application.ID,
		&application.UserID,
		&application.JobID,
		&status,
		&application.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Başvuru ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("başvuru bulunamadı: %w", err)
	}

	application.Status = domain.ApplicationStatus(status)
	return &application, nil
}

func (r *ApplicationRepository) FindAll() ([]*domain.Application, error) {
	query := `SELECT id, user_id, job_id, status, created_at FROM applications ORDER BY id`
	return r.queryApplications(query)
}

func (r *ApplicationRepository) FindByUserID(userID int64) ([]*domain.Application, error) {
	query := `SELECT id, user_id, job_id, status, created_at FROM applications WHERE user_id = $1 ORDER BY id`
	return r.queryApplications(query, userID)
}

func (r *ApplicationRepository) FindByEmployerID(employerID int64) ([]*domain.Application, error) {
	query := `
		SELECT a.id, a.user_id, a.job_id, a.status, a.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1
		ORDER BY a.id
	`
	return r.queryApplications(query, employerID)
}

func (r *ApplicationRepository) queryApplications(query string, args ...interface{}) ([]*domain.Application, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Başvurular listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("başvurular listelenemedi: %w", err)
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		var application domain.Application
		var status string
		err := rows.Scan(
			&application.ID,
			&application.UserID,
			&application.JobID,
			&status,
			&application.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Başvuru verileri okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("başvuru verileri okunamadı: %w", err)
		}
		application.Status = domain.ApplicationStatus(status)
		applications = append(applications, &application)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Satır döngüsü sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("başvuru verileri okunamadı: %w", err)
	}

	return applications, nil
}

func (r *ApplicationRepository) Create(application *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	application.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		application.UserID,
		application.JobID,
		string(application.Status),
		application.CreatedAt,
	).Scan(&application.ID)

	if err != nil {
		r.logger.Error("Başvuru oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("başvuru oluşturulamadı: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) UpdateStatus(id int64, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`

	_, err := r.db.Exec(query, string(status), id)
	if err != nil {
		r.logger.Error("Başvuru durumu güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("başvuru durumu güncellenemedi: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) Delete(id int64) error {
	query := `DELETE FROM applications WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Başvuru silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("başvuru silinemedi: %w", err)
	}

	return nil
}
