package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type JobRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewJobRepository(db *sql.DB, logger logger.Logger) domain.JobRepository {
	return &JobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *JobRepository) FindByID(id int64) (*domain.Job, error) {
	query := `SELECT id, title, description, location, salary, employer_id, created_at FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.Salary,
		&job.EmployerID,
		&job.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("İlan ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("ilan bulunamadı: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) FindAll() ([]*domain.Job, error) {
	query := `SELECT id, title, description, location, salary, employer_id, created_at FROM jobs ORDER BY id`
	return r.queryJobs(query)
}

func (r *JobRepository) FindByEmployerID(employerID int64) ([]*domain.Job, error) {
	query := `SELECT id, title, description, location, salary, employer_id, created_at FROM jobs WHERE employer_id = $1 ORDER BY id`
	return r.queryJobs(query, employerID)
}

func (r *JobRepository) queryJobs(query string, args ...interface{}) ([]*domain.Job, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("İlanlar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("ilanlar listelenemedi: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Description,
			&job.Location,
			&job.Salary,
			&job.EmployerID,
			&job.CreatedAt,
		)
		if err != nil {
			r.logger.Error("İlan verileri okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("ilan verileri okunamadı: %w", err)
		}
		jobs = append(jobs, &job)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Satır döngüsü sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("ilan verileri okunamadı: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) Create(job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, description, location, salary, employer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	job.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		job.EmployerID,
		job.CreatedAt,
	).Scan(&job.ID)

	if err != nil {
		r.logger.Error("İlan oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("ilan oluşturulamadı: %w", err)
	}

	return nil
}

func (r *JobRepository) Update(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, description = $2, location = $3, salary = $4, employer_id = $5
		WHERE id = $6
	`

	_, err := r.db.Exec(
		query,
		job.Title,
		job.Description,
		job.Location,
		job.Salary,
		job.EmployerID,
		job.ID,
	)

	if err != nil {
		r.logger.Error("İlan güncellenemedi", map[string]interface{}{"id": job.ID, "error": err.Error()})
		return fmt.Errorf("ilan güncellenemedi: %w", err)
	}

	return nil
}

// Delete removes the job and its applications in one transaction.
func (r *JobRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("ilan silinemedi: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM applications WHERE job_id = $1`,
		`DELETE FROM jobs WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, id); err != nil {
			r.logger.Error("İlan silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
			return fmt.Errorf("ilan silinemedi: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("ilan silinemedi: %w", err)
	}

	return nil
}
