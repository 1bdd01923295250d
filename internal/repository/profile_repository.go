package repository

import (
	"database/sql"
	"fmt"
	"time"

	"jobboard/internal/domain"
	"jobboard/pkg/logger"
)

type ProfileRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewProfileRepository(db *sql.DB, logger logger.Logger) domain.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) FindByID(id int64) (*domain.Profile, error) {
	query := `SELECT id, user_id, full_name, bio, created_at FROM profiles WHERE id = $1`

	var profile domain.Profile
	var bio sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&bio,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Profil ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("profil bulunamadı: %w", err)
	}

	profile.Bio = bio.String
	return &profile, nil
}

func (r *ProfileRepository) FindByUserID(userID int64) (*domain.Profile, error) {
	query := `SELECT id, user_id, full_name, bio, created_at FROM profiles WHERE user_id = $1`

	var profile domain.Profile
	var bio sql.NullString
	err := r.db.QueryRow(query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&bio,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Profil kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, fmt.Errorf("profil bulunamadı: %w", err)
	}

	profile.Bio = bio.String
	return &profile, nil
}

func (r *ProfileRepository) FindAll() ([]*domain.Profile, error) {
	query := `SELECT id, user_id, full_name, bio, created_at FROM profiles ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Profiller listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("profiller listelenemedi: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		var profile domain.Profile
		var bio sql.NullString
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.FullName,
			&bio,
			&profile.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Profil verileri okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("profil verileri okunamadı: %w", err)
		}
		profile.Bio = bio.String
		profiles = append(profiles, &profile)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Satır döngüsü sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("profil verileri okunamadı: %w", err)
	}

	return profiles, nil
}

func (r *ProfileRepository) Create(profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, bio, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	profile.CreatedAt = time.Now()

	err := r.db.QueryRow(
		query,
		profile.UserID,
		profile.FullName,
		profile.Bio,
		profile.CreatedAt,
	).Scan(&profile.ID)

	if err != nil {
		r.logger.Error("Profil oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("profil oluşturulamadı: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Update(profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, bio = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(query, profile.FullName, profile.Bio, profile.ID)
	if err != nil {
		r.logger.Error("Profil güncellenemedi", map[string]interface{}{"id": profile.ID, "error": err.Error()})
		return fmt.Errorf("profil güncellenemedi: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Delete(id int64) error {
	query := `DELETE FROM profiles WHERE id = $1`

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Profil silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("profil silinemedi: %w", err)
	}

	return nil
}
